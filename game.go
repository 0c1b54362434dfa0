package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/ecs/entity"
	"github.com/milk9111/dragonfight/ecs/system"
	"github.com/milk9111/dragonfight/prefabs"
	"github.com/milk9111/dragonfight/records"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	encounterFile string
	debug         bool
	seed          uint64

	spec  *prefabs.EncounterSpec
	world *ecs.World
	enc   *entity.Encounter
	boss  *system.BossSystem

	input      *keyboardMouse
	watcher    *prefabs.Watcher
	records    *records.Store
	fight      *records.Fight
	renderer   *renderer
	gameOverUI *ebitenui.UI

	restart bool
	quit    bool
}

func NewGame(encounterFile string, debug, watch bool) (*Game, error) {
	g := &Game{
		encounterFile: encounterFile,
		debug:         debug,
		seed:          uint64(time.Now().UnixNano()),
		input:         newKeyboardMouse(),
		renderer:      newRenderer(),
		records:       records.Open("dragonfight"),
	}
	g.gameOverUI = NewGameOverUI(g)

	if err := g.build(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir(), 100*time.Millisecond)
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
			log.Printf("game: watching %s for changes", prefabs.Dir())
		}
	}
	return g, nil
}

// build replaces the world with a freshly loaded encounter.
func (g *Game) build() error {
	spec, err := prefabs.LoadEncounterSpec(g.encounterFile)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	enc, err := entity.BuildEncounter(w, spec)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.boss = system.Install(w, g.input, g.seed)
	g.seed++

	g.spec, g.world, g.enc = spec, w, enc
	g.fight = g.records.StartFight()
	g.restart = false
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.applyReloads()
	if g.quit {
		return ebiten.Termination
	}

	if hud := g.hud(); hud != nil && hud.GameOver {
		if ebiten.CursorMode() != ebiten.CursorModeVisible {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
		g.gameOverUI.Update()
		in := g.input.Sample()
		if in.QuitPressed {
			return ebiten.Termination
		}
		if in.RestartPressed || g.restart {
			log.Printf("game: restarting encounter")
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			return g.build()
		}
		return nil
	}

	g.world.Update(1 / float64(ebiten.TPS()))
	g.recordOutcome()

	if p, ok := ecs.Get(g.world, g.enc.Player, component.InputComponent.Kind()); ok && p.QuitPressed {
		return ebiten.Termination
	}
	return nil
}

// recordOutcome tallies the first boss kill or player death of the fight.
func (g *Game) recordOutcome() {
	for _, evt := range g.world.Events().Peek() {
		if g.fight.Done() {
			return
		}
		var err error
		switch {
		case evt.Type == ecs.EventDied && evt.Data == g.enc.Dragon:
			err = g.fight.Win(g.world.Elapsed())
			log.Printf("game: dragon defeated after %.1fs", g.world.Elapsed())
		case evt.Type == ecs.EventGameOver:
			err = g.fight.Loss()
		}
		if err != nil {
			log.Printf("game: %v", err)
		}
	}
}

func (g *Game) hud() *component.HUD {
	if g.world == nil {
		return nil
	}
	hud, ok := ecs.Get(g.world, g.enc.HUD, component.HUDComponent.Kind())
	if !ok {
		return nil
	}
	return hud
}

// applyReloads re-applies changed tuning to the live entities. Prefabs that
// are read per spawn (fireballs, effects) pick up changes on their own.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if prefabs.IsScriptFile(name) {
		g.boss.ReloadScripts()
		log.Printf("game: reloaded scripts after %s changed", name)
		return
	}

	live := map[string]ecs.Entity{
		g.spec.Player.Prefab: g.enc.Player,
		g.spec.Dragon.Prefab: g.enc.Dragon,
		g.spec.Camera.Prefab: g.enc.Camera,
	}
	e, ok := live[name]
	if !ok {
		log.Printf("game: %s changed, applies to the next spawn or restart", name)
		return
	}
	if err := entity.ReloadTuning(g.world, e, name); err != nil {
		log.Printf("game: reload %s: %v (keeping previous tuning)", name, err)
		return
	}
	log.Printf("game: reloaded %s", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.enc, g.records.Records().String(), g.debug)
	if hud := g.hud(); hud != nil && hud.GameOver {
		g.gameOverUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
