package ecs

import "github.com/milk9111/dragonfight/ecs/component"

// System updates a world once per frame. dt is the frame time in seconds.
type System interface {
	Update(w *World, dt float64)
}

// World owns entities, component stores, delayed tasks and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	systems  []System
	tasks    Scheduler
	events   EventQueue

	physicsWorld *PhysicsWorld

	frame   uint64
	elapsed float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update clears last frame's events, runs every system in order, then fires
// due tasks. Events pushed during the frame (including from tasks) stay
// readable through Events until the next Update.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.events.flush()
	w.frame++
	w.elapsed += dt
	for _, s := range w.systems {
		if s != nil {
			s.Update(w, dt)
		}
	}
	w.tasks.tick(w, dt)
}

// Frame returns the number of completed Update calls.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// Elapsed returns simulated seconds since the world was created.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
	if pw != nil {
		pw.world = w
	}
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// CreateEntity allocates a new live entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e, cancels its pending tasks and
// drops its collider. It reports false when e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e.id())
	}
	w.tasks.cancelOwner(e)
	if w.physicsWorld != nil {
		w.physicsWorld.remove(e)
	}
	return w.entities.destroy(e)
}

// DestroyEntityAfter schedules e for destruction after delay seconds.
func DestroyEntityAfter(w *World, e Entity, delay float64) TaskID {
	if delay <= 0 {
		DestroyEntity(w, e)
		return 0
	}
	return Schedule(w, e, delay, func(w *World) {
		DestroyEntity(w, e)
	})
}

// IsAlive reports whether an entity handle still refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}
