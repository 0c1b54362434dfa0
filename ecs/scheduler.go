package ecs

// TaskID identifies a scheduled task. Zero is never issued.
type TaskID uint64

type task struct {
	id        TaskID
	owner     Entity
	remaining float64
	fn        func(w *World)
	cancelled bool
}

// Scheduler holds one-shot delayed tasks. Each task is owned by an entity
// and is dropped when that entity is destroyed, so a task never runs
// against a dead owner.
type Scheduler struct {
	nextID TaskID
	tasks  []*task
}

// Schedule runs fn once, delay seconds from now, on a later frame. A zero
// owner makes the task world-scoped.
func Schedule(w *World, owner Entity, delay float64, fn func(w *World)) TaskID {
	if w == nil || fn == nil {
		return 0
	}
	if owner.Valid() && !IsAlive(w, owner) {
		return 0
	}
	return w.tasks.add(owner, delay, fn)
}

// CancelTask drops a pending task and reports whether it was still pending.
func CancelTask(w *World, id TaskID) bool {
	if w == nil {
		return false
	}
	return w.tasks.cancel(id)
}

// PendingTasks returns the number of tasks owned by e that have not fired.
func PendingTasks(w *World, e Entity) int {
	if w == nil {
		return 0
	}
	n := 0
	for _, t := range w.tasks.tasks {
		if !t.cancelled && t.owner == e {
			n++
		}
	}
	return n
}

func (s *Scheduler) add(owner Entity, delay float64, fn func(w *World)) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, &task{id: s.nextID, owner: owner, remaining: delay, fn: fn})
	return s.nextID
}

func (s *Scheduler) cancel(id TaskID) bool {
	for _, t := range s.tasks {
		if t.id == id && !t.cancelled {
			t.cancelled = true
			return true
		}
	}
	return false
}

func (s *Scheduler) cancelOwner(owner Entity) {
	for _, t := range s.tasks {
		if t.owner == owner {
			t.cancelled = true
		}
	}
}

// tick advances every task that existed before this call. Tasks scheduled
// from inside a firing task wait for the next frame.
func (s *Scheduler) tick(w *World, dt float64) {
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		t := s.tasks[i]
		if t.cancelled {
			continue
		}
		t.remaining -= dt
		if t.remaining > 0 {
			continue
		}
		t.cancelled = true
		if t.owner.Valid() && !IsAlive(w, t.owner) {
			continue
		}
		t.fn(w)
	}

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}
