package game

import (
	"time"

	"github.com/lunargale/shelfsort/vmath"
)

// SupplyShelf wraps an inner shelf as a dispenser: products can be picked
// up from it but nothing can ever be dropped in
type SupplyShelf struct {
	inner ShelfActor
}

func NewSupplyShelf(inner ShelfActor) *SupplyShelf {
	return &SupplyShelf{inner: inner}
}

func (s *SupplyShelf) Base() *Shelf             { return s.inner.Base() }
func (s *SupplyShelf) Reference() string        { return s.inner.Reference() }
func (s *SupplyShelf) Ignored() bool            { return s.inner.Ignored() }
func (s *SupplyShelf) Position() vmath.Vec2     { return s.inner.Position() }
func (s *SupplyShelf) SetPosition(v vmath.Vec2) { s.inner.SetPosition(v) }
func (s *SupplyShelf) Bounds() vmath.Rect       { return s.inner.Bounds() }
func (s *SupplyShelf) IsEmpty() bool            { return s.inner.IsEmpty() }
func (s *SupplyShelf) IsComplete() bool         { return s.inner.IsComplete() }
func (s *SupplyShelf) Disposed() bool           { return s.inner.Disposed() }

func (s *SupplyShelf) CanPickUpAt(slot int) bool { return s.inner.CanPickUpAt(slot) }

// CanDropAt is forced false: a supply shelf never accepts products
func (s *SupplyShelf) CanDropAt(int) bool { return false }

// FindShelfSlot never reports a candidate since drops are impossible
func (s *SupplyShelf) FindShelfSlot(vmath.Rect) (SlotHit, bool) {
	return SlotHit{}, false
}

func (s *SupplyShelf) CheckForMatches(now time.Time, stats *Stats) ([]*Product, bool) {
	return s.inner.CheckForMatches(now, stats)
}

func (s *SupplyShelf) Update(lv *Level, dt time.Duration) {
	s.inner.Update(lv, dt)
}
