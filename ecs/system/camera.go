package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/common"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// CameraSystem orbits each camera around its target. Mouse deltas come from
// the target's Input.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, cam *component.Camera) {
		target := ecs.Entity(cam.Target)
		tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}

		if in, ok := ecs.Get(w, target, component.InputComponent.Kind()); ok {
			cam.Yaw = common.WrapAngle(cam.Yaw + in.MouseDX*cam.Sensitivity)
			cam.Pitch = common.Clamp(cam.Pitch+in.MouseDY*cam.Sensitivity, cam.MinPitch, cam.MaxPitch)
		}

		cam.Forward = common.CameraForward(cam.Pitch, cam.Yaw)
		pivot := tt.Position.Add(mgl64.Vec3{0, cam.Height, 0})
		cam.Position = pivot.Sub(cam.Forward.Mul(cam.Distance))

		if ct, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			ct.Position = cam.Position
			ct.Rotation = mgl64.Vec3{cam.Pitch, cam.Yaw, 0}
		}
	})
}

// cameraYawFor returns the yaw of the first camera following target.
func cameraYawFor(w *ecs.World, target ecs.Entity) (float64, bool) {
	yaw, found := 0.0, false
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		if !found && ecs.Entity(cam.Target) == target {
			yaw, found = cam.Yaw, true
		}
	})
	return yaw, found
}
