package game

import (
	"fmt"
	"time"

	"github.com/lunargale/shelfsort/constants"
	"github.com/lunargale/shelfsort/content"
	"github.com/lunargale/shelfsort/vmath"
)

// Product is one sortable item. Identity and matching data are immutable
// after construction; position and disappear state mutate during play
type Product struct {
	ID     string
	Name   string
	Points int

	// Locked products cannot be picked up. Applied once at level
	// construction from the level definition's lock list
	Locked bool

	matches map[string]struct{}

	pos vmath.Vec2

	disappearing bool
	vanishTime   time.Time // slot is vacated once this passes
}

// MatchesProduct reports whether other is in this product's match set.
// The relation is directional per the data; authoring keeps it symmetric
// but nothing here enforces that
func (p *Product) MatchesProduct(other *Product) bool {
	if other == nil {
		return false
	}
	_, ok := p.matches[other.ID]
	return ok
}

// MatchesID reports whether id is in this product's match set
func (p *Product) MatchesID(id string) bool {
	_, ok := p.matches[id]
	return ok
}

// Position returns the product's current visual position
func (p *Product) Position() vmath.Vec2 { return p.pos }

// SetPosition moves the product's visual position
func (p *Product) SetPosition(v vmath.Vec2) { p.pos = v }

// Bounds returns the product's AABB, one slot in size
func (p *Product) Bounds() vmath.Rect {
	return vmath.NewRect(p.pos.X, p.pos.Y, constants.SlotWidth, constants.SlotHeight)
}

// Disappearing reports whether the product is scheduled to vanish.
// Disappearing products no longer participate in matching
func (p *Product) Disappearing() bool { return p.disappearing }

// scheduleDisappear starts the exit animation after delay. The slot is
// vacated once the animation has also run its course
func (p *Product) scheduleDisappear(now time.Time, delay time.Duration) {
	p.disappearing = true
	p.vanishTime = now.Add(delay + constants.DisappearDuration)
}

// vanished reports whether the disappear animation has finished
func (p *Product) vanished(now time.Time) bool {
	return p.disappearing && !now.Before(p.vanishTime)
}

// ProductCatalog constructs products from validated definitions.
// Each New call yields a fresh instance; products are not shared
type ProductCatalog struct {
	defs map[string]content.ProductDef
}

// NewProductCatalog indexes product definitions by id.
// Duplicate ids are a definition error
func NewProductCatalog(defs []content.ProductDef) (*ProductCatalog, error) {
	c := &ProductCatalog{defs: make(map[string]content.ProductDef, len(defs))}
	for _, d := range defs {
		if _, dup := c.defs[d.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", d.ID)
		}
		c.defs[d.ID] = d
	}
	return c, nil
}

// Has reports whether the catalog knows the given id
func (c *ProductCatalog) Has(id string) bool {
	_, ok := c.defs[id]
	return ok
}

// MatchSet returns the authored match ids for a product id
func (c *ProductCatalog) MatchSet(id string) []string {
	return c.defs[id].Matches
}

// New builds a fresh product instance for the given id
func (c *ProductCatalog) New(id string) (*Product, error) {
	d, ok := c.defs[id]
	if !ok {
		return nil, fmt.Errorf("unknown product id %q", id)
	}
	p := &Product{
		ID:      d.ID,
		Name:    d.Name,
		Points:  d.Points,
		matches: make(map[string]struct{}, len(d.Matches)),
	}
	for _, m := range d.Matches {
		p.matches[m] = struct{}{}
	}
	return p, nil
}
