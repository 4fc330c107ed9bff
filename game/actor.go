// Package game is the sorting rules engine: shelves, products, placement
// resolution, lock conditions, and level statistics. It is single-threaded;
// one Level.Update call is one simulation tick.
package game

import (
	"time"

	"github.com/lunargale/shelfsort/vmath"
)

// Actor is any positioned entity the level updates every tick
type Actor interface {
	// Update advances animation and internal state by dt. Within one tick
	// all actor updates run before match checks and stat aggregation
	Update(lv *Level, dt time.Duration)

	Position() vmath.Vec2
	SetPosition(v vmath.Vec2)
	Bounds() vmath.Rect

	// Disposed actors are removed from the level during the end-of-tick sweep
	Disposed() bool
}

// SlotHolder is the capability set placement resolution consults. Shelf
// variants compose an owned inner implementor and intercept individual
// checks instead of subclassing
type SlotHolder interface {
	CanPickUpAt(slot int) bool
	CanDropAt(slot int) bool

	// FindShelfSlot returns this holder's single nearest drop-eligible slot
	// overlapping the given bounds, if any
	FindShelfSlot(bounds vmath.Rect) (SlotHit, bool)

	IsEmpty() bool
	IsComplete() bool
}

// ShelfActor is a shelf-like entity a level can register in its flat shelf
// list: capabilities plus the hooks the tick phases need
type ShelfActor interface {
	Actor
	SlotHolder

	// Base returns the concrete shelf holding the live slots. Wrappers
	// delegate to their inner shelf; placement mutation always lands here
	Base() *Shelf

	Reference() string
	Ignored() bool

	// CheckForMatches runs one match scan. At most one group resolves per
	// call; disjoint groups wait for later ticks
	CheckForMatches(now time.Time, stats *Stats) ([]*Product, bool)
}

// SlotHit is one drop candidate produced during placement resolution
type SlotHit struct {
	Target *Shelf
	Slot   int
	Dist   float64 // center-to-center distance to the dragged product
}
