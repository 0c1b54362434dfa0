package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/ecs/entity"
	"github.com/milk9111/dragonfight/ecs/system/mocks"
	"go.uber.org/mock/gomock"
)

func newTargetAt(t *testing.T, w *ecs.World, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	return e
}

func newFireball(t *testing.T, w *ecs.World, origin mgl64.Vec3, owner, target ecs.Entity) ecs.Entity {
	t.Helper()
	e, err := entity.NewFireball(w, "fireball.yaml", origin, owner, target)
	if err != nil {
		t.Fatalf("new fireball: %v", err)
	}
	return e
}

func missingQuerier(ctrl *gomock.Controller) *mocks.MockCollisionQuerier {
	q := mocks.NewMockCollisionQuerier(ctrl)
	q.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ecs.HitInfo{}).AnyTimes()
	q.EXPECT().Intersects(gomock.Any(), gomock.Any()).Return(ecs.HitInfo{}).AnyTimes()
	return q
}

func TestProjectileExpiresAfterMaxLife(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := ecs.NewWorld()
	s := NewProjectileSystem(missingQuerier(ctrl), 1)
	fb := newFireball(t, w, mgl64.Vec3{0, 5, 0}, 0, 0)

	for i := 1; i < 20; i++ {
		if got := s.Step(w, fb, 0.25); got != component.ProjectileFlying {
			t.Fatalf("step %d: outcome %s, want flying", i, got)
		}
	}
	if got := s.Step(w, fb, 0.25); got != component.ProjectileExpired {
		t.Fatalf("outcome after 5s = %s, want expired", got)
	}

	tr, _ := ecs.Get(w, fb, component.TransformComponent.Kind())
	want := mgl64.Vec3{0, 5, -12 * 0.25 * 19}
	if !vecNear(tr.Position, want) {
		t.Fatalf("position = %v, want %v (no movement on the expiring tick)", tr.Position, want)
	}
}

func TestProjectileHomesOnTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := ecs.NewWorld()
	s := NewProjectileSystem(missingQuerier(ctrl), 1)

	target := newTargetAt(t, w, mgl64.Vec3{10, 0, 0})
	fb := newFireball(t, w, mgl64.Vec3{0, 1, 0}, 0, target)

	s.Step(w, fb, 0.25)
	rt, _ := ecs.Get(w, fb, component.ProjectileRuntimeComponent.Kind())
	tr, _ := ecs.Get(w, fb, component.TransformComponent.Kind())
	if !vecNear(rt.Direction, mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("direction = %v, want +x toward the aim point", rt.Direction)
	}
	if !vecNear(tr.Position, mgl64.Vec3{3, 1, 0}) {
		t.Fatalf("position = %v, want (3,1,0)", tr.Position)
	}

	// Retarget every tick: no prediction, no turn limit.
	tt, _ := ecs.Get(w, target, component.TransformComponent.Kind())
	tt.Position = mgl64.Vec3{3, 0, -20}
	s.Step(w, fb, 0.25)
	if !vecNear(rt.Direction, mgl64.Vec3{0, 0, -1}) {
		t.Fatalf("direction = %v, want -z after the target moved", rt.Direction)
	}
	if !vecNear(tr.Position, mgl64.Vec3{3, 1, -3}) {
		t.Fatalf("position = %v, want (3,1,-3)", tr.Position)
	}
}

func TestProjectileKeepsDirectionWhenTargetDies(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := ecs.NewWorld()
	s := NewProjectileSystem(missingQuerier(ctrl), 1)

	target := newTargetAt(t, w, mgl64.Vec3{10, 0, 0})
	fb := newFireball(t, w, mgl64.Vec3{0, 1, 0}, 0, target)
	s.Step(w, fb, 0.25)

	ecs.DestroyEntity(w, target)
	if got := s.Step(w, fb, 0.25); got != component.ProjectileFlying {
		t.Fatalf("outcome = %s, want flying with a dead target", got)
	}
	tr, _ := ecs.Get(w, fb, component.TransformComponent.Kind())
	if !vecNear(tr.Position, mgl64.Vec3{6, 1, 0}) {
		t.Fatalf("position = %v, want straight flight to (6,1,0)", tr.Position)
	}
}

func TestProjectileWithoutTargetUsesDefaultDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := ecs.NewWorld()
	s := NewProjectileSystem(missingQuerier(ctrl), 1)
	fb := newFireball(t, w, mgl64.Vec3{0, 1, 0}, 0, 0)

	s.Step(w, fb, 0.5)
	tr, _ := ecs.Get(w, fb, component.TransformComponent.Kind())
	if !vecNear(tr.Position, mgl64.Vec3{0, 1, -6}) {
		t.Fatalf("position = %v, want (0,1,-6)", tr.Position)
	}
}

func TestProjectileCollision(t *testing.T) {
	tests := []struct {
		name       string
		rayHit     bool
		overlapHit bool
		hitTarget  bool
		want       component.ProjectileOutcome
		wantHealth float64
	}{
		{name: "ray hits target", rayHit: true, hitTarget: true, want: component.ProjectileHitTarget, wantHealth: 75},
		{name: "overlap hits target", overlapHit: true, hitTarget: true, want: component.ProjectileHitTarget, wantHealth: 75},
		{name: "ray hits obstacle", rayHit: true, want: component.ProjectileHitObstacle, wantHealth: 100},
		{name: "nothing hit", want: component.ProjectileFlying, wantHealth: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			w := ecs.NewWorld()

			player, err := entity.BuildEntity(w, "player.yaml")
			if err != nil {
				t.Fatalf("build player: %v", err)
			}
			wall := newTargetAt(t, w, mgl64.Vec3{0, 0, -2})
			owner := ecs.CreateEntity(w)
			fb := newFireball(t, w, mgl64.Vec3{0, 5, 10}, owner, player)

			hitEntity := wall
			if tt.hitTarget {
				hitEntity = player
			}
			ray := ecs.HitInfo{}
			if tt.rayHit {
				ray = ecs.HitInfo{Hit: true, Entity: hitEntity, Distance: 0.3}
			}
			overlap := ecs.HitInfo{}
			if tt.overlapHit {
				overlap = ecs.HitInfo{Hit: true, Entity: hitEntity}
			}

			q := mocks.NewMockCollisionQuerier(ctrl)
			ignore := []ecs.Entity{fb, owner}
			q.EXPECT().Raycast(gomock.Any(), gomock.Any(), 0.6, ignore).Return(ray).Times(1)
			if !tt.rayHit {
				q.EXPECT().Intersects(fb, ignore).Return(overlap).Times(1)
			}

			s := NewProjectileSystem(q, 1)
			if got := s.Step(w, fb, 0.25); got != tt.want {
				t.Fatalf("outcome = %s, want %s", got, tt.want)
			}
			hp, _ := ecs.Get(w, player, component.HealthComponent.Kind())
			if hp.Current != tt.wantHealth {
				t.Fatalf("player health = %v, want %v", hp.Current, tt.wantHealth)
			}
		})
	}
}

func TestProjectileSystemFinishesShot(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := ecs.NewWorld()

	player, err := entity.BuildEntity(w, "player.yaml")
	if err != nil {
		t.Fatalf("build player: %v", err)
	}
	fb := newFireball(t, w, mgl64.Vec3{0, 5, 10}, 0, player)

	q := mocks.NewMockCollisionQuerier(ctrl)
	q.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ecs.HitInfo{Hit: true, Entity: player}).Times(1)

	s := NewProjectileSystem(q, 1)
	s.Update(w, 0.25)

	if ecs.IsAlive(w, fb) {
		t.Fatalf("fireball should be destroyed after hitting")
	}
	var explosions int
	ecs.ForEach(w, component.EffectComponent.Kind(), func(_ ecs.Entity, fx *component.Effect) {
		if fx.Kind == component.EffectExplosion {
			explosions++
		}
	})
	if explosions != 1 {
		t.Fatalf("expected one explosion, got %d", explosions)
	}

	var ended *ecs.FireballEvent
	for _, evt := range w.Events().Peek() {
		if evt.Type == ecs.EventFireballEnded {
			data := evt.Data.(ecs.FireballEvent)
			ended = &data
		}
	}
	if ended == nil || ended.Outcome != "hit_target" || ended.Damage != 25 || ended.Entity != fb {
		t.Fatalf("unexpected fireball event %+v", ended)
	}
}

func TestProjectileReportsRefusedHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := ecs.NewWorld()

	player, err := entity.BuildEntity(w, "player.yaml")
	if err != nil {
		t.Fatalf("build player: %v", err)
	}
	status, _ := ecs.Get(w, player, component.PlayerStatusComponent.Kind())
	status.Invincible = true
	status.InvincibleTimer = 10
	fb := newFireball(t, w, mgl64.Vec3{0, 5, 10}, 0, player)

	q := mocks.NewMockCollisionQuerier(ctrl)
	q.EXPECT().Raycast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ecs.HitInfo{Hit: true, Entity: player}).Times(1)

	NewProjectileSystem(q, 1).Update(w, 0.25)

	var ended *ecs.FireballEvent
	for _, evt := range w.Events().Peek() {
		if evt.Type == ecs.EventFireballEnded {
			data := evt.Data.(ecs.FireballEvent)
			ended = &data
		}
	}
	if ended == nil || ended.Entity != fb || ended.Outcome != "hit_target" || ended.Damage != 0 {
		t.Fatalf("unexpected fireball event %+v", ended)
	}
	hp, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	if hp.Current != hp.Max {
		t.Fatalf("player health = %v, want %v", hp.Current, hp.Max)
	}
}

func TestProjectileExpiresBelowFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := ecs.NewWorld()
	s := NewProjectileSystem(missingQuerier(ctrl), 1)

	target := newTargetAt(t, w, mgl64.Vec3{0, -100, 0})
	fb := newFireball(t, w, mgl64.Vec3{0, -9, 0}, 0, target)

	if got := s.Step(w, fb, 0.25); got != component.ProjectileExpired {
		t.Fatalf("outcome = %s, want expired below floor_y", got)
	}
}
