package game

import (
	"time"

	"github.com/lunargale/shelfsort/constants"
)

// DeepShelf stacks layers of products behind the live one. Only the top
// layer receives placement operations and match checks. Clearing the top
// layer starts a short transition, after which the next layer is revealed.
// The shelf never drops below one layer, so it stays usable even when
// everything below has been played through
type DeepShelf struct {
	*Shelf
	pending [][]*Product // layers below the live one, next first

	transitioning bool
	revealAt      time.Time
}

// NewDeepShelf installs the first layer as the live products and queues
// the rest. Every layer slice is padded/truncated to the slot count by
// the factory
func NewDeepShelf(inner *Shelf, pending [][]*Product) *DeepShelf {
	return &DeepShelf{Shelf: inner, pending: pending}
}

// LayersRemaining counts the layers below the live one
func (d *DeepShelf) LayersRemaining() int { return len(d.pending) }

// IsComplete reports whether every layer, including the live one, is empty
func (d *DeepShelf) IsComplete() bool {
	if !d.Shelf.IsEmpty() {
		return false
	}
	for _, layer := range d.pending {
		for _, p := range layer {
			if p != nil {
				return false
			}
		}
	}
	return true
}

// Update advances the live layer, then handles the reveal transition.
// The reveal only fires while deeper layers exist; the last layer is kept
// even once emptied
func (d *DeepShelf) Update(lv *Level, dt time.Duration) {
	d.Shelf.Update(lv, dt)

	now := lv.Now()
	if !d.Shelf.IsEmpty() || len(d.pending) == 0 {
		d.transitioning = false
		return
	}

	if !d.transitioning {
		d.transitioning = true
		d.revealAt = now.Add(constants.DeepLayerDelay)
		return
	}
	if now.Before(d.revealAt) {
		return
	}

	next := d.pending[0]
	d.pending = d.pending[1:]
	for i := 0; i < d.SlotCount() && i < len(next); i++ {
		if next[i] != nil {
			d.Shelf.AddProductAt(i, next[i])
		}
	}
	d.transitioning = false
	lv.publishLayerRevealed(d.Reference())
}
