package game

import (
	"testing"
	"time"

	"github.com/lunargale/shelfsort/content"
	"github.com/lunargale/shelfsort/engine"
	"github.com/lunargale/shelfsort/vmath"
)

func vec(x, y float64) vmath.Vec2 { return vmath.Vec2{X: x, Y: y} }

// mutualDefs builds product definitions where every id matches every other
func mutualDefs(ids ...string) []content.ProductDef {
	defs := make([]content.ProductDef, 0, len(ids))
	for _, id := range ids {
		var matches []string
		for _, other := range ids {
			if other != id {
				matches = append(matches, other)
			}
		}
		defs = append(defs, content.ProductDef{ID: id, Name: id, Matches: matches})
	}
	return defs
}

func catalogFor(t *testing.T, defs []content.ProductDef) *ProductCatalog {
	t.Helper()
	c, err := NewProductCatalog(defs)
	if err != nil {
		t.Fatalf("NewProductCatalog failed: %v", err)
	}
	return c
}

func mustNew(t *testing.T, c *ProductCatalog, id string) *Product {
	t.Helper()
	p, err := c.New(id)
	if err != nil {
		t.Fatalf("catalog.New(%q) failed: %v", id, err)
	}
	return p
}

// testLevel builds a level over a mock clock so tests control time fully
func testLevel(t *testing.T, def *content.LevelDef, defs []content.ProductDef) (*Level, *engine.MockTimeProvider) {
	t.Helper()
	catalog := catalogFor(t, defs)
	mock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	lv, err := NewLevel(def, catalog, mock)
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}
	return lv, mock
}

// tick advances the mock clock and runs one simulation tick
func tick(lv *Level, mock *engine.MockTimeProvider, dt time.Duration) {
	mock.Advance(dt)
	lv.Update(dt)
}

// fillShelf populates consecutive slots with fresh products
func fillShelf(t *testing.T, s *Shelf, c *ProductCatalog, ids ...string) {
	t.Helper()
	for i, id := range ids {
		if id == "" {
			continue
		}
		if !s.AddProductAt(i, mustNew(t, c, id)) {
			t.Fatalf("AddProductAt(%d, %q) failed", i, id)
		}
	}
}
