package region

import (
	"time"

	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/occupant"
)

// Occupant is what a Registry can hold.
type Occupant interface {
	Position() space.GamePos
	SlotID() occupant.SlotID
	SetSlotID(id occupant.SlotID)
	ResetAnim(now time.Time)
	Validate() error
}

// Registry is an ordered arena of occupants. Every insertion gets a fresh
// slot id; ids are never reused, so effects holding an id of a removed
// occupant resolve to nothing.
type Registry[T Occupant] struct {
	items []T
	next  occupant.SlotID
}

// NewRegistry creates an empty registry.
func NewRegistry[T Occupant]() *Registry[T] {
	return &Registry[T]{}
}

// Len returns the number of occupants.
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// Items returns the occupants in insertion order. The slice must not be
// modified.
func (r *Registry[T]) Items() []T {
	return r.items
}

// Each calls fn for every occupant in insertion order.
func (r *Registry[T]) Each(fn func(T)) {
	for _, it := range r.items {
		fn(it)
	}
}

// Push inserts item with its base animation selected and returns its slot.
func (r *Registry[T]) Push(item T, now time.Time) occupant.SlotID {
	item.ResetAnim(now)
	return r.insert(item)
}

// PushOverride replaces whatever occupies item's cell.
func (r *Registry[T]) PushOverride(item T, now time.Time) occupant.SlotID {
	r.RemoveAt(item.Position())
	return r.Push(item, now)
}

// restore inserts item as decoded, keeping its animation state.
func (r *Registry[T]) restore(item T) occupant.SlotID {
	return r.insert(item)
}

func (r *Registry[T]) insert(item T) occupant.SlotID {
	r.next++
	item.SetSlotID(r.next)
	r.items = append(r.items, item)
	return r.next
}

// AtPos returns the first occupant at pos.
func (r *Registry[T]) AtPos(pos space.GamePos) (T, bool) {
	cell := pos.Round()
	for _, it := range r.items {
		if it.Position().Round() == cell {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// AllAtPos returns every occupant at pos in insertion order.
func (r *Registry[T]) AllAtPos(pos space.GamePos) []T {
	cell := pos.Round()
	var out []T
	for _, it := range r.items {
		if it.Position().Round() == cell {
			out = append(out, it)
		}
	}
	return out
}

// Get resolves a slot id.
func (r *Registry[T]) Get(id occupant.SlotID) (T, bool) {
	for _, it := range r.items {
		if it.SlotID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// RemoveWhere drops every occupant matching pred and returns how many were
// removed. Order of the rest is preserved.
func (r *Registry[T]) RemoveWhere(pred func(T) bool) int {
	kept := r.items[:0]
	removed := 0
	for _, it := range r.items {
		if pred(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	var zero T
	for i := len(kept); i < len(r.items); i++ {
		r.items[i] = zero
	}
	r.items = kept
	return removed
}

// RemoveAt drops every occupant at pos.
func (r *Registry[T]) RemoveAt(pos space.GamePos) int {
	cell := pos.Round()
	return r.RemoveWhere(func(it T) bool {
		return it.Position().Round() == cell
	})
}
