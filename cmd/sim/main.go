package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/ecs/entity"
	"github.com/milk9111/dragonfight/ecs/system"
	"github.com/milk9111/dragonfight/prefabs"
)

// sim runs an encounter without a window and prints what happens. The
// player is driven by a fixed pattern instead of devices.
func main() {
	encounterFile := flag.String("m", "encounter.yaml", "encounter prefab to load")
	seconds := flag.Float64("seconds", 30, "simulated time")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	strafe := flag.Bool("strafe", false, "hold right for the whole run")
	hitEvery := flag.Float64("hit-every", 0, "seconds between debug hits on the dragon, 0 to disable")
	seed := flag.Uint64("seed", 1, "random seed for effects and snow")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("sim: tps must be positive, got %d", *tps)
	}

	spec, err := prefabs.LoadEncounterSpec(*encounterFile)
	if err != nil {
		log.Fatal(err)
	}
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	enc, err := entity.BuildEncounter(w, spec)
	if err != nil {
		log.Fatal(err)
	}

	dt := 1 / float64(*tps)
	var clock, nextHit float64
	nextHit = *hitEvery
	sampler := system.InputFunc(func() component.Input {
		in := component.Input{Right: *strafe}
		if *hitEvery > 0 && clock >= nextHit {
			in.DebugDamagePressed = true
			nextHit += *hitEvery
		}
		return in
	})
	system.Install(w, sampler, *seed)

	frames := int(*seconds * float64(*tps))
	for i := 0; i < frames; i++ {
		w.Update(dt)
		clock = w.Elapsed()
		if report(w, clock) {
			break
		}
	}

	hp, _ := ecs.Get(w, enc.Player, component.HealthComponent.Kind())
	boss, _ := ecs.Get(w, enc.Dragon, component.HealthComponent.Kind())
	fmt.Printf("%7.2fs end: player %s dragon %s\n", clock, healthString(hp), healthString(boss))
}

// report prints the frame's events and reports whether the run is over.
func report(w *ecs.World, clock float64) bool {
	over := false
	for _, evt := range w.Events().Peek() {
		switch evt.Type {
		case ecs.EventBossState:
			if data, ok := evt.Data.(ecs.BossStateEvent); ok {
				fmt.Printf("%7.2fs boss %s -> %s\n", clock, data.From, data.To)
			}
		case ecs.EventFireballEnded:
			if data, ok := evt.Data.(ecs.FireballEvent); ok {
				fmt.Printf("%7.2fs fireball %s damage=%.0f\n", clock, data.Outcome, data.Damage)
			}
		case ecs.EventMessage:
			fmt.Printf("%7.2fs message %q\n", clock, evt.Data)
		case ecs.EventDied:
			fmt.Printf("%7.2fs died %v\n", clock, evt.Data)
		case ecs.EventGameOver:
			fmt.Printf("%7.2fs game over\n", clock)
			over = true
		}
	}
	return over
}

func healthString(h *component.Health) string {
	if h == nil {
		return "gone"
	}
	return fmt.Sprintf("%.0f/%.0f", h.Current, h.Max)
}
