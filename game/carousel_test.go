package game

import (
	"testing"
	"time"

	"github.com/lunargale/shelfsort/content"
)

func TestCarouselWrapsAround(t *testing.T) {
	// Two one-slot shelves, spacing 1: per-child extent 6, loop length 12
	def := &content.LevelDef{
		Name: "loop",
		Grid: content.GridDef{Cols: 20, Rows: 20},
		Actors: []content.ActorDef{
			{Type: "carousel", Speed: 2, Spacing: 1, Children: []content.ActorDef{
				{Type: "shelf", Reference: "a", SlotCount: 1},
				{Type: "shelf", Reference: "b", SlotCount: 1},
			}},
			{Type: "shelf", Reference: "src", SlotCount: 1, Y: 10, Products: []string{"p"}},
		},
	}
	lv, mock := testLevel(t, def, mutualDefs("p"))

	a := lv.Shelves()[0].Base()
	b := lv.Shelves()[1].Base()

	if a.Position().X != 0 || b.Position().X != 6 {
		t.Fatalf("initial layout: a at %v, b at %v", a.Position().X, b.Position().X)
	}

	tick(lv, mock, time.Second) // travel 2
	if a.Position().X != 2 || b.Position().X != 8 {
		t.Errorf("after 1s: a at %v, b at %v, want 2 and 8", a.Position().X, b.Position().X)
	}

	tick(lv, mock, 2*time.Second) // travel 6: b wraps to the start
	if a.Position().X != 6 || b.Position().X != 0 {
		t.Errorf("after 3s: a at %v, b at %v, want 6 and 0", a.Position().X, b.Position().X)
	}

	// A looped shelf is a drop target at its current position
	if !lv.BeginDrag(vec(2.5, 11.5)) {
		t.Fatal("BeginDrag on the source failed")
	}
	if !lv.EndDrag(vec(2.5, 1.5)) {
		t.Fatal("drop onto the wrapped shelf failed")
	}
	if got := b.ProductAt(0); got == nil || got.ID != "p" {
		t.Error("product did not land on the wrapped shelf")
	}

	tick(lv, mock, 3*time.Second) // travel 12: one full loop
	if a.Position().X != 0 || b.Position().X != 6 {
		t.Errorf("after a full loop: a at %v, b at %v, want 0 and 6", a.Position().X, b.Position().X)
	}
}
