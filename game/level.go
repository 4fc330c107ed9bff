package game

import (
	"time"

	"github.com/lunargale/shelfsort/constants"
	"github.com/lunargale/shelfsort/engine"
	"github.com/lunargale/shelfsort/events"
	"github.com/lunargale/shelfsort/vmath"
)

// DragState is the single in-flight drag. The product stays in its origin
// slot while held; shelves mutate exactly once, at release
type DragState struct {
	Holder  ShelfActor
	Shelf   *Shelf
	Slot    int
	Product *Product
	Pos     vmath.Vec2
}

// Level owns the actor set, resolves drag-and-drop placement across all
// shelves, and aggregates the statistics lock conditions consult. It is
// the single source of truth for level-wide state
type Level struct {
	name      string
	gridCols  int
	gridRows  int
	timeLimit time.Duration

	timeProvider engine.TimeProvider
	queue        *events.EventQueue
	catalog      *ProductCatalog

	// actors are the top-level entities updated each tick; containers
	// update their own children
	actors []Actor

	// shelves is the flat hit-testable list, including shelves nested in
	// containers, registered once at construction
	shelves []ShelfActor

	lockers []*LockingShelf

	stats    *Stats
	dragging *DragState

	completed bool
}

// Now returns the current game time
func (lv *Level) Now() time.Time { return lv.timeProvider.Now() }

// Events returns the level's event queue
func (lv *Level) Events() *events.EventQueue { return lv.queue }

// Name returns the level definition's display name
func (lv *Level) Name() string { return lv.name }

// Grid returns the level's notional grid footprint in cells
func (lv *Level) Grid() (cols, rows int) { return lv.gridCols, lv.gridRows }

// TimeLimit returns the optional level time limit, 0 when none
func (lv *Level) TimeLimit() time.Duration { return lv.timeLimit }

// Shelves returns the flat shelf list in registration order
func (lv *Level) Shelves() []ShelfActor { return lv.shelves }

// Actors returns the top-level actor list
func (lv *Level) Actors() []Actor { return lv.actors }

// Dragging returns the in-flight drag, nil when none
func (lv *Level) Dragging() *DragState { return lv.dragging }

// Stats returns the live statistics. Read-only for callers; conditions
// evaluate against this during the tick
func (lv *Level) Stats() *Stats { return lv.stats }

// StatsSnapshot returns a deep copy safe for external consumers
func (lv *Level) StatsSnapshot() Stats { return lv.stats.Snapshot() }

// Completed reports whether every non-ignored shelf is complete
func (lv *Level) Completed() bool { return lv.completed }

func (lv *Level) condEnv() CondEnv {
	return CondEnv{TimeLimit: lv.timeLimit, Catalog: lv.catalog}
}

// Update advances one simulation tick. Phase order is fixed: actor
// updates, then match checks, then stat aggregation, then lock
// re-evaluation, then the disposal sweep. A lock condition therefore
// always observes the current tick's placements, never a stale snapshot
func (lv *Level) Update(dt time.Duration) {
	lv.stats.Elapsed += dt
	now := lv.Now()

	for _, a := range lv.actors {
		a.Update(lv, dt)
	}

	for _, sa := range lv.shelves {
		if sa.Disposed() {
			continue
		}
		group, found := sa.CheckForMatches(now, lv.stats)
		if found {
			lv.publishMatch(sa, group, now)
		}
	}

	lv.aggregate(now)

	for _, ls := range lv.lockers {
		ls.Reevaluate(now, lv.stats, lv.condEnv(), lv.queue)
	}

	lv.sweep(now)
}

// aggregate rebuilds completion flags and the current placement snapshot
// from live shelf state. Disposed shelves keep their last recorded
// completion; everything else is recomputed from scratch
func (lv *Level) aggregate(now time.Time) {
	allDone := true
	for _, sa := range lv.shelves {
		ref := sa.Reference()
		complete := sa.IsComplete()

		if !sa.Ignored() && !complete {
			allDone = false
		}
		if ref == "" {
			continue
		}

		if complete && !lv.stats.ShelfCompleted[ref] {
			lv.queue.Push(events.GameEvent{
				Type:      events.EventShelfCompleted,
				Timestamp: now,
				Payload:   &events.ShelfPayload{ShelfRef: ref},
			})
		}
		lv.stats.ShelfCompleted[ref] = complete

		// Current placement snapshot, one id per slot
		base := sa.Base()
		slots := make([]string, base.SlotCount())
		for i := range slots {
			if p := base.ProductAt(i); p != nil {
				slots[i] = p.ID
			}
		}
		lv.stats.CurrentPlacement[ref] = slots
	}

	count := 0
	for _, v := range lv.stats.ShelfCompleted {
		if v {
			count++
		}
	}
	lv.stats.CompletedShelfCount = count

	if allDone && !lv.completed {
		lv.completed = true
		lv.queue.Push(events.GameEvent{
			Type:      events.EventLevelCompleted,
			Timestamp: now,
		})
	}
}

// sweep removes disposed entities from the actor, shelf and locker lists
func (lv *Level) sweep(now time.Time) {
	liveActors := lv.actors[:0]
	for _, a := range lv.actors {
		if !a.Disposed() {
			liveActors = append(liveActors, a)
		}
	}
	lv.actors = liveActors

	liveLockers := lv.lockers[:0]
	for _, ls := range lv.lockers {
		if !ls.Disposed() {
			liveLockers = append(liveLockers, ls)
		}
	}
	lv.lockers = liveLockers

	liveShelves := lv.shelves[:0]
	for _, sa := range lv.shelves {
		if !sa.Disposed() {
			liveShelves = append(liveShelves, sa)
			continue
		}
		if ref := sa.Reference(); ref != "" {
			lv.queue.Push(events.GameEvent{
				Type:      events.EventShelfDisposed,
				Timestamp: now,
				Payload:   &events.ShelfPayload{ShelfRef: ref},
			})
		}
	}
	lv.shelves = liveShelves
}

// BeginDrag starts a drag if the press point overlaps a pick-up-eligible
// slot. Only one drag may be in flight; a second press is a no-op while
// one is active. The product stays in its slot until release
func (lv *Level) BeginDrag(p vmath.Vec2) bool {
	if lv.dragging != nil {
		return false
	}
	for _, sa := range lv.shelves {
		slot, ok := sa.Base().SlotIndexAt(p)
		if !ok || !sa.CanPickUpAt(slot) {
			continue
		}
		lv.dragging = &DragState{
			Holder:  sa,
			Shelf:   sa.Base(),
			Slot:    slot,
			Product: sa.Base().ProductAt(slot),
			Pos:     p,
		}
		lv.queue.Push(events.GameEvent{
			Type:      events.EventProductPicked,
			Timestamp: lv.Now(),
			Payload: &events.ProductMovedPayload{
				ProductID: lv.dragging.Product.ID,
				FromShelf: sa.Reference(),
				FromSlot:  slot,
			},
		})
		return true
	}
	return false
}

// MoveDrag updates the held product's visual position. No shelf mutates
// while the product is held
func (lv *Level) MoveDrag(p vmath.Vec2) {
	if lv.dragging != nil {
		lv.dragging.Pos = p
	}
}

// EndDrag resolves the release. Every shelf offers its single nearest
// capability-eligible slot whose bounds overlap the dragged product; the
// globally nearest wins, ties broken by the order the candidate list was
// built in (shelf registration order, then slot order). With no eligible
// overlapping slot anywhere the drop is invalid and the product keeps its
// origin slot. A valid drop mutates exactly one origin and one
// destination, and appends to the placement log when the destination
// shelf carries a reference
func (lv *Level) EndDrag(p vmath.Vec2) bool {
	d := lv.dragging
	if d == nil {
		return false
	}
	lv.dragging = nil
	now := lv.Now()

	prodBounds := vmath.NewRect(
		p.X-constants.SlotWidth/2,
		p.Y-constants.SlotHeight/2,
		constants.SlotWidth,
		constants.SlotHeight,
	)

	var best SlotHit
	found := false
	for _, sa := range lv.shelves {
		hit, ok := sa.FindShelfSlot(prodBounds)
		if !ok {
			continue
		}
		if !found || hit.Dist < best.Dist {
			best = hit
			found = true
		}
	}

	if !found {
		lv.queue.Push(events.GameEvent{
			Type:      events.EventDropRejected,
			Timestamp: now,
			Payload: &events.ProductMovedPayload{
				ProductID: d.Product.ID,
				FromShelf: d.Shelf.Reference(),
				FromSlot:  d.Slot,
			},
		})
		return false
	}

	if _, ok := d.Shelf.RemoveProductAt(d.Slot); !ok {
		return false
	}
	best.Target.AddProductAt(best.Slot, d.Product)

	if ref := best.Target.Reference(); ref != "" {
		lv.stats.recordPlacement(ref, best.Slot, d.Product.ID)
	}

	lv.queue.Push(events.GameEvent{
		Type:      events.EventProductPlaced,
		Timestamp: now,
		Payload: &events.ProductMovedPayload{
			ProductID: d.Product.ID,
			FromShelf: d.Shelf.Reference(),
			FromSlot:  d.Slot,
			ToShelf:   best.Target.Reference(),
			ToSlot:    best.Slot,
		},
	})
	return true
}

func (lv *Level) publishMatch(sa ShelfActor, group []*Product, now time.Time) {
	ids := make([]string, len(group))
	points := 0
	for i, p := range group {
		ids[i] = p.ID
		points += p.Points
	}
	lv.queue.Push(events.GameEvent{
		Type:      events.EventMatchFound,
		Timestamp: now,
		Payload:   &events.MatchFoundPayload{ShelfRef: sa.Reference(), ProductIDs: ids, Points: points},
	})
}

func (lv *Level) publishLayerRevealed(ref string) {
	if ref == "" {
		return
	}
	lv.queue.Push(events.GameEvent{
		Type:      events.EventLayerRevealed,
		Timestamp: lv.Now(),
		Payload:   &events.ShelfPayload{ShelfRef: ref},
	})
}
