package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dragonfight/common"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/ecs/entity"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const controlsHelp = "WASD - move\nSpace - jump\nQ - dash\nF - damage dragon (test)\nR - restart\nEsc - quit"

// renderer draws a top-down view of the encounter centered on the camera
// target, rotated so the camera looks up the screen.
type renderer struct {
	pixelsPerUnit float64
	face          ebtext.Face
}

func newRenderer() *renderer {
	return &renderer{pixelsPerUnit: 12, face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

type view struct {
	center mgl64.Vec3
	yaw    float64
	ppu    float64
}

func (v view) project(p mgl64.Vec3) (float32, float32) {
	local := common.RotateYaw(p.Sub(v.center), -v.yaw)
	return float32(baseWidth/2 + local.X()*v.ppu), float32(baseHeight/2 - local.Z()*v.ppu)
}

func (r *renderer) Draw(screen *ebiten.Image, w *ecs.World, enc *entity.Encounter, summary string, debug bool) {
	screen.Fill(color.NRGBA{R: 0x12, G: 0x16, B: 0x22, A: 0xff})
	if w == nil || enc == nil {
		return
	}

	v := view{ppu: r.pixelsPerUnit}
	if cam, ok := ecs.Get(w, enc.Camera, component.CameraComponent.Kind()); ok {
		v.yaw = cam.Yaw
		if tt, ok := ecs.Get(w, ecs.Entity(cam.Target), component.TransformComponent.Kind()); ok {
			v.center = tt.Position
		}
	}

	// Ground first, then bodies by height so flying things draw on top.
	ecs.ForEach3(w, component.GroundTagComponent.Kind(), component.TransformComponent.Kind(), component.ModelComponent.Kind(),
		func(_ ecs.Entity, _ *component.GroundTag, tr *component.Transform, m *component.Model) {
			r.drawBody(screen, v, tr, m)
		})
	var bodies []ecs.Entity
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ModelComponent.Kind(), func(e ecs.Entity, _ *component.Transform, m *component.Model) {
		if !m.Hidden && !ecs.Has(w, e, component.GroundTagComponent.Kind()) {
			bodies = append(bodies, e)
		}
	})
	sortByHeight(w, bodies)
	for _, e := range bodies {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		m, _ := ecs.Get(w, e, component.ModelComponent.Kind())
		r.drawBody(screen, v, tr, m)
	}

	r.drawWorldBars(screen, w, v)
	r.drawHUD(screen, w, enc)
	r.text(screen, summary, 20, baseHeight-44, colornames.Lightgray)

	if debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f  frame: %d  entities: %d  colliders: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), w.Frame(), len(ecs.Entities(w)), w.PhysicsWorld().Len()), 10, baseHeight-20)
	}
}

func sortByHeight(w *ecs.World, es []ecs.Entity) {
	y := func(e ecs.Entity) float64 {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		return tr.Position.Y()
	}
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && y(es[j]) < y(es[j-1]); j-- {
			es[j], es[j-1] = es[j-1], es[j]
		}
	}
}

func (r *renderer) drawBody(screen *ebiten.Image, v view, tr *component.Transform, m *component.Model) {
	scale := tr.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	x, y := v.project(tr.Position)
	c := m.Color

	switch m.Primitive {
	case component.PrimitiveSphere:
		radius := float32(math.Max(scale.X(), scale.Z()) / 2 * v.ppu)
		vector.DrawFilledCircle(screen, x, y, max(radius, 1), c, true)
	default:
		wpx := float32(scale.X() * v.ppu)
		hpx := float32(scale.Z() * v.ppu)
		vector.DrawFilledRect(screen, x-wpx/2, y-hpx/2, wpx, hpx, c, false)
		if m.Primitive == component.PrimitiveCube {
			facing := tr.Position.Add(common.FacingDir(tr.Rotation.Y()).Mul(math.Max(scale.X(), scale.Z()) / 2))
			fx, fy := v.project(facing)
			vector.StrokeLine(screen, x, y, fx, fy, 2, colornames.White, true)
		}
	}
}

func (r *renderer) drawWorldBars(screen *ebiten.Image, w *ecs.World, v view) {
	ecs.ForEach(w, component.HealthBarComponent.Kind(), func(_ ecs.Entity, bar *component.HealthBar) {
		owner := ecs.Entity(bar.Owner)
		if ecs.Has(w, owner, component.PlayerStatusComponent.Kind()) {
			return
		}
		tr, ok := ecs.Get(w, owner, component.TransformComponent.Kind())
		if !ok {
			return
		}
		x, y := v.project(tr.Position.Add(bar.Offset))
		width := float32(bar.Width * v.ppu)
		vector.DrawFilledRect(screen, x-width/2, y-4, width, 6, colornames.Black, false)
		vector.DrawFilledRect(screen, x-width/2, y-4, width*float32(bar.Ratio), 6, bar.Band.Color(), false)
		r.text(screen, bar.Label, float64(x-width/2), float64(y-18), colornames.White)
	})
}

func (r *renderer) drawHUD(screen *ebiten.Image, w *ecs.World, enc *entity.Encounter) {
	hud, ok := ecs.Get(w, enc.HUD, component.HUDComponent.Kind())
	if !ok {
		return
	}

	const barW, barH = 300, 16
	vector.DrawFilledRect(screen, 20, 20, barW, barH, colornames.Black, false)
	vector.DrawFilledRect(screen, 20, 20, float32(barW*hud.PlayerRatio), barH, hud.PlayerBand.Color(), false)
	r.text(screen, fmt.Sprintf("HP %.0f%%", hud.PlayerRatio*100), 24, 22, colornames.White)

	if hud.BossVisible {
		x := float32(baseWidth - 20 - barW)
		vector.DrawFilledRect(screen, x, 20, barW, barH, colornames.Black, false)
		vector.DrawFilledRect(screen, x, 20, float32(barW*hud.BossRatio), barH, hud.BossBand.Color(), false)
		r.text(screen, fmt.Sprintf("Dragon %.0f%% (%s)", hud.BossRatio*100, hud.BossState), float64(x+4), 22, colornames.White)
	}

	if hud.Message != "" {
		r.text(screen, hud.Message, baseWidth/2-float64(len(hud.Message))*3.5, 60, colornames.Gold)
	}
	r.text(screen, controlsHelp, 20, 60, colornames.Lightgray)
}

func (r *renderer) text(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = 16
	ebtext.Draw(screen, s, r.face, op)
}
