package ecs

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragonfight/ecs/component"
)

// HitInfo describes the closest collider found by a query.
type HitInfo struct {
	Hit      bool
	Entity   Entity
	Point    mgl64.Vec3
	Distance float64
}

// volume is a world-space collider: an AABB or a sphere.
type volume struct {
	shape  component.ColliderShape
	center mgl64.Vec3
	half   mgl64.Vec3
	radius float64
}

func (v volume) min() mgl64.Vec3 { return v.center.Sub(v.half) }
func (v volume) max() mgl64.Vec3 { return v.center.Add(v.half) }

// footprint is the XZ box used by the Chipmunk broad phase. Chipmunk is 2D,
// so world Z maps to space Y.
func (v volume) footprint() cp.BB {
	return cp.BB{
		L: v.center.X() - v.half.X(),
		B: v.center.Z() - v.half.Z(),
		R: v.center.X() + v.half.X(),
		T: v.center.Z() + v.half.Z(),
	}
}

type physicsBody struct {
	body  *cp.Body
	shape *cp.Shape
	vol   volume
}

// PhysicsWorld indexes collider footprints in a Chipmunk space and answers
// 3D ray and overlap queries against them. Nothing is simulated: bodies are
// kinematic and follow their Transform on Sync.
type PhysicsWorld struct {
	space *cp.Space
	world *World

	bodies        map[Entity]*physicsBody
	shapeToEntity map[*cp.Shape]Entity
}

// NewPhysicsWorld creates an empty physics world. Attach it with
// World.SetPhysicsWorld.
func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		space:         cp.NewSpace(),
		bodies:        make(map[Entity]*physicsBody),
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Len returns the number of indexed colliders.
func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

func volumeFor(t *component.Transform, c *component.Collider) volume {
	scale := t.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	center := t.Position.Add(c.Offset)
	if c.Shape == component.ColliderSphere {
		s := math.Max(math.Abs(scale.X()), math.Max(math.Abs(scale.Y()), math.Abs(scale.Z())))
		r := math.Abs(c.Size.X()) * s / 2
		return volume{shape: c.Shape, center: center, half: mgl64.Vec3{r, r, r}, radius: r}
	}
	half := mgl64.Vec3{
		math.Abs(c.Size.X()*scale.X()) / 2,
		math.Abs(c.Size.Y()*scale.Y()) / 2,
		math.Abs(c.Size.Z()*scale.Z()) / 2,
	}
	return volume{shape: c.Shape, center: center, half: half}
}

func (pw *PhysicsWorld) volumeOf(e Entity) (volume, bool) {
	if pw == nil || pw.world == nil {
		return volume{}, false
	}
	t, ok := Get(pw.world, e, component.TransformComponent.Kind())
	if !ok {
		return volume{}, false
	}
	c, ok := Get(pw.world, e, component.ColliderComponent.Kind())
	if !ok || c.Disabled {
		return volume{}, false
	}
	return volumeFor(t, c), true
}

// Sync moves every collider's body to its Transform, adds new colliders and
// drops ones that were removed or disabled.
func (pw *PhysicsWorld) Sync() {
	if pw == nil || pw.world == nil {
		return
	}
	seen := make(map[Entity]struct{}, len(pw.bodies))
	ForEach2(pw.world, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e Entity, c *component.Collider, t *component.Transform) {
		if c.Disabled {
			return
		}
		seen[e] = struct{}{}
		vol := volumeFor(t, c)
		pb := pw.bodies[e]
		if pb != nil && pb.vol == vol {
			return
		}
		// Re-adding reindexes the shape's cached box in the broad phase.
		if pb != nil {
			pw.remove(e)
		}
		pw.add(e, vol)
	})
	for e := range pw.bodies {
		if _, ok := seen[e]; !ok {
			pw.remove(e)
		}
	}
}

func (pw *PhysicsWorld) add(e Entity, vol volume) {
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: vol.center.X(), Y: vol.center.Z()})
	var shape *cp.Shape
	if vol.shape == component.ColliderSphere {
		shape = cp.NewCircle(body, vol.radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, 2*vol.half.X(), 2*vol.half.Z(), 0)
	}
	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = &physicsBody{body: body, shape: shape, vol: vol}
	pw.shapeToEntity[shape] = e
}

func (pw *PhysicsWorld) remove(e Entity) {
	if pw == nil {
		return
	}
	pb, ok := pw.bodies[e]
	if !ok {
		return
	}
	delete(pw.bodies, e)
	delete(pw.shapeToEntity, pb.shape)
	pw.space.RemoveShape(pb.shape)
	pw.space.RemoveBody(pb.body)
}

// candidates returns the entities whose footprint overlaps bb.
func (pw *PhysicsWorld) candidates(bb cp.BB, ignore []Entity) []Entity {
	var out []Entity
	pw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := pw.shapeToEntity[shape]
		if !ok || ignored(e, ignore) {
			return
		}
		out = append(out, e)
	}, nil)
	return out
}

func ignored(e Entity, ignore []Entity) bool {
	for _, ig := range ignore {
		if ig == e {
			return true
		}
	}
	return false
}

// Raycast returns the closest collider hit by the segment from origin along
// dir, up to maxDist. Colliders containing origin are hit at distance zero.
func (pw *PhysicsWorld) Raycast(origin, dir mgl64.Vec3, maxDist float64, ignore []Entity) HitInfo {
	if pw == nil || maxDist <= 0 {
		return HitInfo{}
	}
	l := dir.Len()
	if l < 1e-9 {
		return HitInfo{}
	}
	dir = dir.Mul(1 / l)
	end := origin.Add(dir.Mul(maxDist))
	const pad = 1e-6
	bb := cp.BB{
		L: math.Min(origin.X(), end.X()) - pad,
		B: math.Min(origin.Z(), end.Z()) - pad,
		R: math.Max(origin.X(), end.X()) + pad,
		T: math.Max(origin.Z(), end.Z()) + pad,
	}

	best := HitInfo{Distance: math.Inf(1)}
	for _, e := range pw.candidates(bb, ignore) {
		pb := pw.bodies[e]
		t, ok := rayVolume(origin, dir, maxDist, pb.vol)
		if !ok {
			continue
		}
		if t < best.Distance || (t == best.Distance && e < best.Entity) {
			best = HitInfo{Hit: true, Entity: e, Point: origin.Add(dir.Mul(t)), Distance: t}
		}
	}
	if !best.Hit {
		return HitInfo{}
	}
	return best
}

// Intersects returns the closest collider overlapping e's own collider. The
// volume is read from e's current Transform, so it does not wait for Sync.
func (pw *PhysicsWorld) Intersects(e Entity, ignore []Entity) HitInfo {
	vol, ok := pw.volumeOf(e)
	if !ok {
		return HitInfo{}
	}
	best := HitInfo{Distance: math.Inf(1)}
	for _, other := range pw.candidates(vol.footprint(), ignore) {
		if other == e {
			continue
		}
		pb := pw.bodies[other]
		if !overlaps(vol, pb.vol) {
			continue
		}
		d := pb.vol.center.Sub(vol.center).Len()
		if d < best.Distance || (d == best.Distance && other < best.Entity) {
			best = HitInfo{Hit: true, Entity: other, Point: closestPoint(pb.vol, vol.center), Distance: d}
		}
	}
	if !best.Hit {
		return HitInfo{}
	}
	return best
}

func rayVolume(origin, dir mgl64.Vec3, maxDist float64, v volume) (float64, bool) {
	if v.shape == component.ColliderSphere {
		return raySphere(origin, dir, maxDist, v.center, v.radius)
	}
	return rayBox(origin, dir, maxDist, v.min(), v.max())
}

// rayBox is a slab test. It returns the entry distance along the ray.
func rayBox(origin, dir mgl64.Vec3, maxDist float64, bmin, bmax mgl64.Vec3) (float64, bool) {
	tmin, tmax := 0.0, maxDist
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < bmin[i] || origin[i] > bmax[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (bmin[i] - origin[i]) * inv
		t2 := (bmax[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

func raySphere(origin, dir mgl64.Vec3, maxDist float64, center mgl64.Vec3, r float64) (float64, bool) {
	m := origin.Sub(center)
	c := m.Dot(m) - r*r
	if c <= 0 {
		return 0, true
	}
	b := m.Dot(dir)
	if b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	if t > maxDist {
		return 0, false
	}
	return t, true
}

func closestPoint(v volume, p mgl64.Vec3) mgl64.Vec3 {
	if v.shape == component.ColliderSphere {
		d := p.Sub(v.center)
		l := d.Len()
		if l <= v.radius || l < 1e-12 {
			return p
		}
		return v.center.Add(d.Mul(v.radius / l))
	}
	lo, hi := v.min(), v.max()
	return mgl64.Vec3{
		math.Max(lo.X(), math.Min(p.X(), hi.X())),
		math.Max(lo.Y(), math.Min(p.Y(), hi.Y())),
		math.Max(lo.Z(), math.Min(p.Z(), hi.Z())),
	}
}

func overlaps(a, b volume) bool {
	switch {
	case a.shape == component.ColliderSphere && b.shape == component.ColliderSphere:
		r := a.radius + b.radius
		return a.center.Sub(b.center).LenSqr() <= r*r
	case a.shape == component.ColliderSphere:
		return closestPoint(b, a.center).Sub(a.center).LenSqr() <= a.radius*a.radius
	case b.shape == component.ColliderSphere:
		return closestPoint(a, b.center).Sub(b.center).LenSqr() <= b.radius*b.radius
	}
	amin, amax := a.min(), a.max()
	bmin, bmax := b.min(), b.max()
	for i := 0; i < 3; i++ {
		if amax[i] < bmin[i] || bmax[i] < amin[i] {
			return false
		}
	}
	return true
}
