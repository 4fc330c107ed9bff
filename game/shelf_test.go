package game

import (
	"testing"
	"time"

	"github.com/lunargale/shelfsort/content"
)

func TestAddRemoveKeepsSlotIdentity(t *testing.T) {
	c := catalogFor(t, mutualDefs("a", "b"))
	s := NewShelf(3, 2, "", false)

	a := mustNew(t, c, "a")
	if !s.AddProductAt(1, a) {
		t.Fatal("AddProductAt(1) failed on empty slot")
	}
	if s.AddProductAt(1, mustNew(t, c, "b")) {
		t.Error("AddProductAt succeeded on an occupied slot")
	}
	if s.AddProductAt(3, mustNew(t, c, "b")) {
		t.Error("AddProductAt succeeded out of range")
	}
	if s.AddProductAt(-1, mustNew(t, c, "b")) {
		t.Error("AddProductAt succeeded on negative index")
	}
	if s.AddProductAt(0, nil) {
		t.Error("AddProductAt succeeded with nil product")
	}

	if got := s.ProductAt(1); got != a {
		t.Errorf("ProductAt(1) = %v, want the added product", got)
	}
	if s.ProductAt(0) != nil || s.ProductAt(2) != nil {
		t.Error("untouched slots are not empty")
	}

	if _, ok := s.RemoveProductAt(0); ok {
		t.Error("RemoveProductAt succeeded on empty slot")
	}
	if _, ok := s.RemoveProductAt(5); ok {
		t.Error("RemoveProductAt succeeded out of range")
	}
	got, ok := s.RemoveProductAt(1)
	if !ok || got != a {
		t.Errorf("RemoveProductAt(1) = %v, %v", got, ok)
	}
	if s.ProductAt(1) != nil {
		t.Error("slot 1 still occupied after removal")
	}
}

func TestThreeMutualProductsMatch(t *testing.T) {
	defs := mutualDefs("a", "b", "c")
	lv, mock := testLevel(t, &content.LevelDef{
		Grid: content.GridDef{Cols: 20, Rows: 10},
		Actors: []content.ActorDef{
			{Type: "shelf", SlotCount: 3, Match: 3, Reference: "main", Products: []string{"a", "b", "c"}},
		},
	}, defs)

	tick(lv, mock, 50*time.Millisecond)

	st := lv.Stats()
	if st.TotalMatches != 3 {
		t.Errorf("TotalMatches = %d, want 3", st.TotalMatches)
	}
	for _, id := range []string{"a", "b", "c"} {
		if st.ProductMatches[id] != 1 {
			t.Errorf("ProductMatches[%s] = %d, want 1", id, st.ProductMatches[id])
		}
	}

	base := lv.Shelves()[0].Base()
	for i := 0; i < 3; i++ {
		p := base.ProductAt(i)
		if p == nil {
			t.Fatalf("slot %d already vacated on the match tick", i)
		}
		if !p.Disappearing() {
			t.Errorf("slot %d product not scheduled to disappear", i)
		}
	}

	// The whole group clears once the staggered exits run out
	tick(lv, mock, 2*time.Second)
	if !base.IsEmpty() {
		t.Error("shelf not empty after disappear animations")
	}
	if !lv.Shelves()[0].IsComplete() {
		t.Error("shelf with one resolved match and no products should be complete")
	}
}

func TestMatchGroupIsPairwiseAgainstWholeGroup(t *testing.T) {
	// b matches a and c, but a and c do not match each other: no trio
	defs := []content.ProductDef{
		{ID: "a", Matches: []string{"b"}},
		{ID: "b", Matches: []string{"a", "c"}},
		{ID: "c", Matches: []string{"b"}},
	}
	c := catalogFor(t, defs)
	s := NewShelf(3, 3, "", false)
	fillShelf(t, s, c, "a", "b", "c")

	if _, found := s.CheckForMatches(time.Now(), NewStats()); found {
		t.Error("found a match group whose members are not pairwise matching")
	}
}

func TestFirstQualifyingSeedWins(t *testing.T) {
	// Slots 0-1 hold a dead-end pair; slots 2-4 a full mutual trio.
	// The scan must move past the failing seeds and report the trio
	defs := append(mutualDefs("x", "y", "z"),
		content.ProductDef{ID: "a", Matches: []string{"b"}},
		content.ProductDef{ID: "b", Matches: []string{"a"}},
	)
	c := catalogFor(t, defs)
	s := NewShelf(5, 3, "", false)
	fillShelf(t, s, c, "a", "b", "x", "y", "z")

	group, found := s.CheckForMatches(time.Now(), NewStats())
	if !found {
		t.Fatal("no match found")
	}
	if len(group) != 3 {
		t.Fatalf("group size = %d, want 3", len(group))
	}
	if group[0].ID != "x" {
		t.Errorf("group seed = %q, want %q", group[0].ID, "x")
	}
}

func TestOneGroupPerTick(t *testing.T) {
	// Two disjoint trios interleaved across six slots. Only one resolves
	// per check; the second follows on the next
	defs := append(mutualDefs("a", "b", "c"), mutualDefs("d", "e", "f")...)
	c := catalogFor(t, defs)
	s := NewShelf(6, 3, "", false)
	fillShelf(t, s, c, "a", "d", "b", "e", "c", "f")

	stats := NewStats()
	now := time.Now()

	group, found := s.CheckForMatches(now, stats)
	if !found || group[0].ID != "a" {
		t.Fatalf("first check: found=%v seed=%v, want the a-b-c group", found, group)
	}
	if stats.TotalMatches != 3 {
		t.Errorf("TotalMatches = %d after first group, want 3", stats.TotalMatches)
	}

	// Disappearing products are out of the pool, so the second trio
	// resolves on the following check
	group, found = s.CheckForMatches(now, stats)
	if !found {
		t.Fatal("second check found nothing")
	}
	ids := map[string]bool{}
	for _, p := range group {
		ids[p.ID] = true
	}
	if !ids["d"] || !ids["e"] || !ids["f"] {
		t.Errorf("second group = %v, want d-e-f", ids)
	}

	if _, found = s.CheckForMatches(now, stats); found {
		t.Error("third check found a group with nothing live left")
	}
}

func TestMatchNeedsExactGroupSize(t *testing.T) {
	c := catalogFor(t, mutualDefs("a", "b", "c"))
	s := NewShelf(3, 3, "", false)
	fillShelf(t, s, c, "a", "b")

	if _, found := s.CheckForMatches(time.Now(), NewStats()); found {
		t.Error("two products matched with matchCount 3")
	}
}

func TestSlotGeometry(t *testing.T) {
	s := NewShelf(3, 2, "", false)
	s.SetPosition(vec(10, 5))

	if i, ok := s.SlotIndexAt(vec(12, 6)); !ok || i != 0 {
		t.Errorf("SlotIndexAt(12,6) = %d,%v want slot 0", i, ok)
	}
	if i, ok := s.SlotIndexAt(vec(21, 6)); !ok || i != 2 {
		t.Errorf("SlotIndexAt(21,6) = %d,%v want slot 2", i, ok)
	}
	if _, ok := s.SlotIndexAt(vec(9, 6)); ok {
		t.Error("SlotIndexAt hit outside the shelf")
	}
	if _, ok := s.SlotIndexAt(vec(12, 9)); ok {
		t.Error("SlotIndexAt hit below the shelf")
	}
}

// Grouping requires the match relation in both directions: a product
// listing a partner that does not list it back never forms a group.
func TestOneWayMatchDoesNotGroup(t *testing.T) {
	defs := []content.ProductDef{
		{ID: "a", Name: "A", Points: 1, Matches: []string{"b"}},
		{ID: "b", Name: "B", Points: 1},
	}
	lv, mock := testLevel(t, &content.LevelDef{
		Grid: content.GridDef{Cols: 20, Rows: 10},
		Actors: []content.ActorDef{
			{Type: "shelf", SlotCount: 2, Match: 2, Reference: "main", Products: []string{"a", "b"}},
		},
	}, defs)

	tick(lv, mock, 50*time.Millisecond)

	if st := lv.Stats(); st.TotalMatches != 0 {
		t.Errorf("TotalMatches = %d, want 0 for a one-way relation", st.TotalMatches)
	}
	base := lv.Shelves()[0].Base()
	for i := 0; i < 2; i++ {
		if p := base.ProductAt(i); p == nil || p.Disappearing() {
			t.Errorf("slot %d should hold an untouched product", i)
		}
	}
}
