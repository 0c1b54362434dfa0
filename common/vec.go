package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is world up. The world is y-up with +z as the zero-yaw forward axis.
var Up = mgl64.Vec3{0, 1, 0}

// Flatten drops the vertical component.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no length.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Heading returns the yaw in degrees an entity needs to face along dir.
// Models face -z at zero yaw.
func Heading(dir mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(-dir[0], -dir[2]))
}

// FacingDir is the inverse of Heading on the horizontal plane.
func FacingDir(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{-math.Sin(r), 0, -math.Cos(r)}
}

// Pitch returns the pitch in degrees of dir, positive when looking down.
func Pitch(dir mgl64.Vec3) float64 {
	flat := math.Hypot(dir[0], dir[2])
	return mgl64.RadToDeg(math.Atan2(-dir[1], flat))
}

// CameraForward is the view direction for a camera rotated by pitch (down
// positive) and yaw, both in degrees.
func CameraForward(pitch, yaw float64) mgl64.Vec3 {
	p := mgl64.DegToRad(pitch)
	y := mgl64.DegToRad(yaw)
	return mgl64.Vec3{
		math.Sin(y) * math.Cos(p),
		-math.Sin(p),
		math.Cos(y) * math.Cos(p),
	}
}

// CameraRight is the horizontal right vector for a camera yawed by yaw degrees.
func CameraRight(yaw float64) mgl64.Vec3 {
	y := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Cos(y), 0, -math.Sin(y)}
}

// RotateYaw rotates a local offset (x right, y up, -z forward) into world
// space for an entity with the given yaw in degrees.
func RotateYaw(v mgl64.Vec3, yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	s, c := math.Sin(r), math.Cos(r)
	return mgl64.Vec3{v.X()*c + v.Z()*s, v.Y(), -v.X()*s + v.Z()*c}
}
