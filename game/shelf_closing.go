package game

import (
	"time"

	"github.com/lunargale/shelfsort/vmath"
)

// ClosingShelf behaves like a base shelf until its first match resolves,
// then transitions to closed. Closed is terminal: no further pick-up or
// drop is possible
type ClosingShelf struct {
	*Shelf
	closed bool
}

func NewClosingShelf(inner *Shelf) *ClosingShelf {
	return &ClosingShelf{Shelf: inner}
}

// Closed reports whether the shelf has shut for good
func (c *ClosingShelf) Closed() bool { return c.closed }

func (c *ClosingShelf) CanPickUpAt(slot int) bool {
	return !c.closed && c.Shelf.CanPickUpAt(slot)
}

func (c *ClosingShelf) CanDropAt(slot int) bool {
	return !c.closed && c.Shelf.CanDropAt(slot)
}

func (c *ClosingShelf) FindShelfSlot(bounds vmath.Rect) (SlotHit, bool) {
	if c.closed {
		return SlotHit{}, false
	}
	return c.Shelf.FindShelfSlot(bounds)
}

func (c *ClosingShelf) CheckForMatches(now time.Time, stats *Stats) ([]*Product, bool) {
	group, found := c.Shelf.CheckForMatches(now, stats)
	if found {
		c.closed = true
	}
	return group, found
}
