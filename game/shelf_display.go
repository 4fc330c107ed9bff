package game

import "time"

// DisplayShelf requires a specific arrangement instead of match groups:
// every slot must hold exactly its allowed product, and slots with no
// allowed product must stay empty. Matching is all-or-nothing; nothing
// disappears on success
type DisplayShelf struct {
	*Shelf
	allowed  []string // required product id per slot, "" = must stay empty
	reported bool     // match event already emitted
}

// NewDisplayShelf pairs each slot with its required product id.
// len(allowed) must equal the shelf's slot count (validated upstream)
func NewDisplayShelf(inner *Shelf, allowed []string) *DisplayShelf {
	return &DisplayShelf{Shelf: inner, allowed: allowed}
}

// AllowedAt returns the required product id for a slot, "" for must-stay-empty
func (d *DisplayShelf) AllowedAt(slot int) string {
	if slot < 0 || slot >= len(d.allowed) {
		return ""
	}
	return d.allowed[slot]
}

// arrangementMatches checks every slot against its allowed product.
// Any mismatch voids the whole match, no partial credit
func (d *DisplayShelf) arrangementMatches() bool {
	for i := 0; i < d.SlotCount(); i++ {
		p := d.ProductAt(i)
		want := d.allowed[i]
		switch {
		case p == nil && want == "":
		case p != nil && p.ID == want:
		default:
			return false
		}
	}
	return true
}

// IsComplete reports whether the current arrangement matches. Unlike the
// base shelf this can revert if a product is dragged back out
func (d *DisplayShelf) IsComplete() bool {
	return d.arrangementMatches()
}

// CheckForMatches replaces the group search entirely. A display match
// reports once on the rising edge and leaves the products in place
func (d *DisplayShelf) CheckForMatches(now time.Time, stats *Stats) ([]*Product, bool) {
	if !d.arrangementMatches() {
		d.reported = false
		return nil, false
	}
	if d.reported {
		return nil, false
	}
	d.reported = true

	group := make([]*Product, 0, d.SlotCount())
	for i := 0; i < d.SlotCount(); i++ {
		if p := d.ProductAt(i); p != nil {
			group = append(group, p)
		}
	}
	return group, true
}
