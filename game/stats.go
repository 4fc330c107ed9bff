package game

import "time"

// Placement is one entry of the append-only placement log: a product was
// dropped into a slot of a referenced shelf. Entries are never pruned
// during a level's lifetime; latch lock conditions depend on history
// staying intact
type Placement struct {
	ShelfRef  string
	Slot      int
	ProductID string
}

// Stats are the level-lifetime statistics every lock condition and the
// HUD read from. Match counters are incremented at the match site;
// completion flags and the current placement snapshot are recomputed in
// full each tick from live shelf state, which keeps them drift-free at
// O(shelves) per tick
type Stats struct {
	Elapsed time.Duration

	// TotalMatches counts matched products across the level; a resolved
	// group of three adds three
	TotalMatches   int
	ProductMatches map[string]int

	// ShelfCompleted is keyed by shelf reference. Disposed shelves keep
	// their last state so historical completion stays observable
	ShelfCompleted      map[string]bool
	CompletedShelfCount int

	Placements []Placement

	// CurrentPlacement is the per-tick snapshot of referenced shelves:
	// one product id per slot, "" for empty
	CurrentPlacement map[string][]string
}

func NewStats() *Stats {
	return &Stats{
		ProductMatches:   make(map[string]int),
		ShelfCompleted:   make(map[string]bool),
		CurrentPlacement: make(map[string][]string),
	}
}

// recordMatch credits every product of a resolved group
func (s *Stats) recordMatch(group []*Product) {
	for _, p := range group {
		s.ProductMatches[p.ID]++
		s.TotalMatches++
	}
}

// recordPlacement appends to the placement log
func (s *Stats) recordPlacement(ref string, slot int, productID string) {
	s.Placements = append(s.Placements, Placement{ShelfRef: ref, Slot: slot, ProductID: productID})
}

// placedEver scans the log for a qualifying historical placement.
// productID "" accepts any product
func (s *Stats) placedEver(ref string, slot int, productID string) bool {
	for _, p := range s.Placements {
		if p.ShelfRef == ref && p.Slot == slot && (productID == "" || p.ProductID == productID) {
			return true
		}
	}
	return false
}

// slotContent returns the product id currently occupying a referenced
// shelf slot, "" when empty or unknown
func (s *Stats) slotContent(ref string, slot int) string {
	slots, ok := s.CurrentPlacement[ref]
	if !ok || slot < 0 || slot >= len(slots) {
		return ""
	}
	return slots[slot]
}

// Snapshot returns a deep copy safe to hand to external consumers
func (s *Stats) Snapshot() Stats {
	cp := Stats{
		Elapsed:             s.Elapsed,
		TotalMatches:        s.TotalMatches,
		CompletedShelfCount: s.CompletedShelfCount,
		ProductMatches:      make(map[string]int, len(s.ProductMatches)),
		ShelfCompleted:      make(map[string]bool, len(s.ShelfCompleted)),
		CurrentPlacement:    make(map[string][]string, len(s.CurrentPlacement)),
		Placements:          make([]Placement, len(s.Placements)),
	}
	copy(cp.Placements, s.Placements)
	for k, v := range s.ProductMatches {
		cp.ProductMatches[k] = v
	}
	for k, v := range s.ShelfCompleted {
		cp.ShelfCompleted[k] = v
	}
	for k, v := range s.CurrentPlacement {
		slots := make([]string, len(v))
		copy(slots, v)
		cp.CurrentPlacement[k] = slots
	}
	return cp
}
