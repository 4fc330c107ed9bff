package game

import (
	"time"

	"github.com/lunargale/shelfsort/constants"
	"github.com/lunargale/shelfsort/vmath"
)

// Shelf is the base fixed-capacity product container. Slot identity is
// positional and stable: products[i] is nil or exactly one product
type Shelf struct {
	slotCount  int
	matchCount int
	products   []*Product

	reference string
	ignore    bool

	pos vmath.Vec2

	matchGroups int // resolved match groups on this shelf
	disposed    bool
}

// NewShelf creates an empty shelf. matchCount is the group size required
// to resolve a match
func NewShelf(slotCount, matchCount int, reference string, ignore bool) *Shelf {
	return &Shelf{
		slotCount:  slotCount,
		matchCount: matchCount,
		products:   make([]*Product, slotCount),
		reference:  reference,
		ignore:     ignore,
	}
}

func (s *Shelf) SlotCount() int    { return s.slotCount }
func (s *Shelf) MatchCount() int   { return s.matchCount }
func (s *Shelf) Reference() string { return s.reference }
func (s *Shelf) Ignored() bool     { return s.ignore }
func (s *Shelf) MatchGroups() int  { return s.matchGroups }

// ProductAt returns the occupant of a slot, nil when empty or out of range
func (s *Shelf) ProductAt(slot int) *Product {
	if slot < 0 || slot >= s.slotCount {
		return nil
	}
	return s.products[slot]
}

// AddProductAt places a product into an empty slot. Returns false without
// mutating on an invalid slot, an occupied slot, or a nil product
func (s *Shelf) AddProductAt(slot int, p *Product) bool {
	if p == nil || slot < 0 || slot >= s.slotCount || s.products[slot] != nil {
		return false
	}
	s.products[slot] = p
	b := s.SlotBounds(slot)
	p.SetPosition(vmath.Vec2{X: b.X, Y: b.Y})
	return true
}

// RemoveProductAt vacates a slot and returns what it held. Returns false
// without mutating on an invalid or empty slot
func (s *Shelf) RemoveProductAt(slot int) (*Product, bool) {
	if slot < 0 || slot >= s.slotCount || s.products[slot] == nil {
		return nil, false
	}
	p := s.products[slot]
	s.products[slot] = nil
	return p, true
}

// Position returns the shelf's top-left corner
func (s *Shelf) Position() vmath.Vec2 { return s.pos }

// SetPosition moves the shelf and its occupants
func (s *Shelf) SetPosition(v vmath.Vec2) {
	s.pos = v
	for i, p := range s.products {
		if p != nil {
			b := s.SlotBounds(i)
			p.SetPosition(vmath.Vec2{X: b.X, Y: b.Y})
		}
	}
}

// Bounds returns the shelf's AABB spanning all slots
func (s *Shelf) Bounds() vmath.Rect {
	return vmath.NewRect(s.pos.X, s.pos.Y, float64(s.slotCount)*constants.SlotWidth, constants.SlotHeight)
}

// SlotBounds returns the AABB of one slot
func (s *Shelf) SlotBounds(slot int) vmath.Rect {
	return vmath.NewRect(s.pos.X+float64(slot)*constants.SlotWidth, s.pos.Y, constants.SlotWidth, constants.SlotHeight)
}

// SlotIndexAt returns the slot containing the given point
func (s *Shelf) SlotIndexAt(p vmath.Vec2) (int, bool) {
	for i := 0; i < s.slotCount; i++ {
		if s.SlotBounds(i).Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// CanPickUpAt reports whether the slot holds a product that may leave:
// present, not construction-locked, not mid-disappear
func (s *Shelf) CanPickUpAt(slot int) bool {
	p := s.ProductAt(slot)
	return p != nil && !p.Locked && !p.Disappearing()
}

// CanDropAt reports whether the slot can receive a product
func (s *Shelf) CanDropAt(slot int) bool {
	return slot >= 0 && slot < s.slotCount && s.products[slot] == nil
}

// FindShelfSlot returns the nearest drop-eligible slot overlapping bounds
func (s *Shelf) FindShelfSlot(bounds vmath.Rect) (SlotHit, bool) {
	return s.findEligibleSlot(bounds, s.CanDropAt)
}

// findEligibleSlot is the shared slot search. canDrop lets variants swap
// in their own drop capability without re-deriving the geometry. Ties go
// to the lowest slot index
func (s *Shelf) findEligibleSlot(bounds vmath.Rect, canDrop func(int) bool) (SlotHit, bool) {
	best := SlotHit{}
	found := false
	for i := 0; i < s.slotCount; i++ {
		if !canDrop(i) {
			continue
		}
		sb := s.SlotBounds(i)
		if !sb.Intersects(bounds) {
			continue
		}
		d := sb.CenterDist(bounds)
		if !found || d < best.Dist {
			best = SlotHit{Target: s, Slot: i, Dist: d}
			found = true
		}
	}
	return best, found
}

// IsEmpty reports whether every slot is vacant
func (s *Shelf) IsEmpty() bool {
	for _, p := range s.products {
		if p != nil {
			return false
		}
	}
	return true
}

// IsComplete reports base completion: the shelf resolved at least one
// match and everything has been cleared away
func (s *Shelf) IsComplete() bool {
	return s.matchGroups > 0 && s.IsEmpty()
}

// Base returns the shelf itself; wrappers override to reach their inner shelf
func (s *Shelf) Base() *Shelf { return s }

// Disposed reports whether a wrapping variant marked this shelf for removal
func (s *Shelf) Disposed() bool { return s.disposed }

func (s *Shelf) dispose() { s.disposed = true }

// Update advances disappear timers and keeps occupants on their slots
func (s *Shelf) Update(lv *Level, dt time.Duration) {
	now := lv.Now()
	for i, p := range s.products {
		if p == nil {
			continue
		}
		if p.vanished(now) {
			s.products[i] = nil
			continue
		}
		b := s.SlotBounds(i)
		p.SetPosition(vmath.Vec2{X: b.X, Y: b.Y})
	}
}

// CheckForMatches runs one greedy match scan over the live products.
//
// Each product in slot order seeds a candidate group. The group grows by
// repeatedly appending the first (slot-ordered) product that matches every
// member accumulated so far, stopping at matchCount or when nothing
// qualifies. The first seed whose group reaches matchCount wins; later
// seeds are not pursued this tick even if they would also qualify, so
// resolution is order-dependent rather than globally optimal.
//
// A resolved group schedules each member to disappear, staggered by its
// index within the group, and records the match in stats
func (s *Shelf) CheckForMatches(now time.Time, stats *Stats) ([]*Product, bool) {
	live := make([]*Product, 0, s.slotCount)
	for _, p := range s.products {
		if p != nil && !p.Disappearing() {
			live = append(live, p)
		}
	}
	if len(live) < s.matchCount || s.matchCount == 0 {
		return nil, false
	}

	for seed := range live {
		group := s.growGroup(live, seed)
		if len(group) == s.matchCount {
			s.resolveMatch(group, now, stats)
			return group, true
		}
	}
	return nil, false
}

// growGroup grows a candidate group from one seed
func (s *Shelf) growGroup(live []*Product, seed int) []*Product {
	group := []*Product{live[seed]}
	inGroup := map[*Product]bool{live[seed]: true}

	for len(group) < s.matchCount {
		grown := false
		for _, cand := range live {
			if inGroup[cand] {
				continue
			}
			if matchesAll(cand, group) {
				group = append(group, cand)
				inGroup[cand] = true
				grown = true
				break
			}
		}
		if !grown {
			break
		}
	}
	return group
}

// matchesAll requires the candidate to match every accumulated member,
// not just the seed
func matchesAll(cand *Product, group []*Product) bool {
	for _, m := range group {
		if !cand.MatchesProduct(m) || !m.MatchesProduct(cand) {
			return false
		}
	}
	return true
}

func (s *Shelf) resolveMatch(group []*Product, now time.Time, stats *Stats) {
	for i, p := range group {
		p.scheduleDisappear(now, time.Duration(i)*constants.DisappearStagger)
	}
	s.matchGroups++
	stats.recordMatch(group)
}
