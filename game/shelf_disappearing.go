package game

import (
	"time"

	"github.com/lunargale/shelfsort/constants"
	"github.com/lunargale/shelfsort/vmath"
)

// DisappearingShelf wraps an inner shelf and removes it from play once it
// completes: a short exit animation runs, then both wrapper and inner are
// disposed. While exiting, no placement operations are forwarded
type DisappearingShelf struct {
	inner ShelfActor

	exiting  bool
	exitAt   time.Time
	disposed bool
}

func NewDisappearingShelf(inner ShelfActor) *DisappearingShelf {
	return &DisappearingShelf{inner: inner}
}

// Exiting reports whether the exit animation is running
func (d *DisappearingShelf) Exiting() bool { return d.exiting }

func (d *DisappearingShelf) Base() *Shelf         { return d.inner.Base() }
func (d *DisappearingShelf) Reference() string    { return d.inner.Reference() }
func (d *DisappearingShelf) Ignored() bool        { return d.inner.Ignored() }
func (d *DisappearingShelf) Position() vmath.Vec2 { return d.inner.Position() }
func (d *DisappearingShelf) SetPosition(v vmath.Vec2) {
	d.inner.SetPosition(v)
}
func (d *DisappearingShelf) Bounds() vmath.Rect { return d.inner.Bounds() }

func (d *DisappearingShelf) IsEmpty() bool    { return d.inner.IsEmpty() }
func (d *DisappearingShelf) IsComplete() bool { return d.inner.IsComplete() }
func (d *DisappearingShelf) Disposed() bool   { return d.disposed }

func (d *DisappearingShelf) CanPickUpAt(slot int) bool {
	return !d.exiting && d.inner.CanPickUpAt(slot)
}

func (d *DisappearingShelf) CanDropAt(slot int) bool {
	return !d.exiting && d.inner.CanDropAt(slot)
}

func (d *DisappearingShelf) FindShelfSlot(bounds vmath.Rect) (SlotHit, bool) {
	if d.exiting {
		return SlotHit{}, false
	}
	return d.inner.FindShelfSlot(bounds)
}

func (d *DisappearingShelf) CheckForMatches(now time.Time, stats *Stats) ([]*Product, bool) {
	if d.exiting {
		return nil, false
	}
	return d.inner.CheckForMatches(now, stats)
}

func (d *DisappearingShelf) Update(lv *Level, dt time.Duration) {
	d.inner.Update(lv, dt)

	now := lv.Now()
	if !d.exiting {
		if d.inner.IsComplete() {
			d.exiting = true
			d.exitAt = now.Add(constants.ShelfExitDuration)
		}
		return
	}
	if !now.Before(d.exitAt) && !d.disposed {
		d.disposed = true
		d.inner.Base().dispose()
	}
}
