package game

import (
	"testing"
	"time"

	"github.com/lunargale/shelfsort/content"
	"github.com/lunargale/shelfsort/events"
)

func TestCollapseAnchorPlacement(t *testing.T) {
	// Children: a two-slot shelf (width 10) and a one-slot shelf (width 5),
	// spacing 1, in a footprint of 20 cells
	tests := []struct {
		name   string
		anchor Anchor
		wantX  []float64
	}{
		{"start", AnchorStart, []float64{0, 11}},
		{"center", AnchorCenter, []float64{2, 13}},
		{"end", AnchorEnd, []float64{4, 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewShelf(2, 0, "", false)
			b := NewShelf(1, 0, "", false)
			c := NewCollapse([]Actor{a, b}, AxisX, tt.anchor, 20, 1)
			c.Layout()
			if got := a.Position().X; got != tt.wantX[0] {
				t.Errorf("first child X = %v, want %v", got, tt.wantX[0])
			}
			if got := b.Position().X; got != tt.wantX[1] {
				t.Errorf("second child X = %v, want %v", got, tt.wantX[1])
			}
		})
	}
}

func TestCollapseVerticalAxis(t *testing.T) {
	a := NewShelf(1, 0, "", false)
	b := NewShelf(1, 0, "", false)
	c := NewCollapse([]Actor{a, b}, AxisY, AnchorEnd, 10, 0)
	c.Layout()
	// Two shelves of height 3 anchored to the end of a 10-cell footprint
	if got := a.Position().Y; got != 4 {
		t.Errorf("first child Y = %v, want 4", got)
	}
	if got := b.Position().Y; got != 7 {
		t.Errorf("second child Y = %v, want 7", got)
	}
}

func TestCollapseCompactsAfterChildDisposal(t *testing.T) {
	def := &content.LevelDef{
		Name: "compact",
		Grid: content.GridDef{Cols: 30, Rows: 10},
		Actors: []content.ActorDef{
			{Type: "collapse", Anchor: "start", Footprint: 30, Spacing: 1, Children: []content.ActorDef{
				{Type: "disappearing", Inner: &content.ActorDef{
					Type: "shelf", Reference: "gone", SlotCount: 2, Match: 2, Products: []string{"a", "b"},
				}},
				{Type: "shelf", Reference: "stay", SlotCount: 2},
			}},
		},
	}
	lv, mock := testLevel(t, def, mutualDefs("a", "b"))

	col, ok := lv.Actors()[0].(*Collapse)
	if !ok {
		t.Fatalf("actor 0 is %T, want *Collapse", lv.Actors()[0])
	}
	stay := lv.Shelves()[1].Base()
	if got := stay.Position().X; got != 11 {
		t.Fatalf("initial layout put the second child at X %v, want 11", got)
	}

	tick(lv, mock, 50*time.Millisecond)  // pair matches
	tick(lv, mock, 2*time.Second)        // products vanish, exit starts
	tick(lv, mock, 500*time.Millisecond) // first child disposes
	tick(lv, mock, 50*time.Millisecond)  // collapse prunes, compaction starts
	tick(lv, mock, 600*time.Millisecond) // ease runs out, child settles

	if col.ChildCount() != 1 {
		t.Fatalf("collapse holds %d children, want 1", col.ChildCount())
	}
	if got := stay.Position().X; got != 0 {
		t.Errorf("surviving child settled at X %v, want 0", got)
	}
	if len(lv.Shelves()) != 1 || lv.Shelves()[0].Reference() != "stay" {
		t.Error("disposed child still in the placement list")
	}
}

func TestCollapseDisposesWhenEmpty(t *testing.T) {
	def := &content.LevelDef{
		Name: "drain",
		Grid: content.GridDef{Cols: 20, Rows: 10},
		Actors: []content.ActorDef{
			{Type: "collapse", Children: []content.ActorDef{
				{Type: "disappearing", Inner: &content.ActorDef{
					Type: "shelf", Reference: "gone", SlotCount: 2, Match: 2, Products: []string{"a", "b"},
				}},
			}},
		},
	}
	lv, mock := testLevel(t, def, mutualDefs("a", "b"))

	col := lv.Actors()[0].(*Collapse)

	tick(lv, mock, 50*time.Millisecond)
	tick(lv, mock, 2*time.Second)
	tick(lv, mock, 500*time.Millisecond)
	tick(lv, mock, 50*time.Millisecond)

	if !col.Disposed() {
		t.Error("collapse alive after its last child disposed")
	}
	if len(lv.Actors()) != 0 {
		t.Error("disposed collapse still in the actor list")
	}
	if !hasEvent(eventTypes(lv), events.EventShelfDisposed) {
		t.Error("no disposal event for the vanished shelf")
	}
}
