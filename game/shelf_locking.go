package game

import (
	"time"

	"github.com/lunargale/shelfsort/constants"
	"github.com/lunargale/shelfsort/events"
	"github.com/lunargale/shelfsort/vmath"
)

// LockingShelf wraps an inner shelf and gates its pick-up and drop
// capabilities behind a lock condition. Geometry and updates forward
// untouched; while locked the shelf exposes no usable slots at all.
// The lock is recomputed every tick against the level's statistics,
// after stat aggregation, so it always sees the current tick's placements
type LockingShelf struct {
	inner ShelfActor
	cond  LockCondition

	locked          bool
	evaluated       bool // first evaluation sets the baseline without an edge event
	transitionUntil time.Time
}

func NewLockingShelf(inner ShelfActor, cond LockCondition) *LockingShelf {
	return &LockingShelf{inner: inner, cond: cond, locked: true}
}

// Locked reports the current gate state
func (l *LockingShelf) Locked() bool { return l.locked }

// Condition returns the configured lock condition
func (l *LockingShelf) Condition() LockCondition { return l.cond }

// InTransition reports whether the visual open/close transition is still
// running. Display-only; carries no rule state
func (l *LockingShelf) InTransition(now time.Time) bool {
	return now.Before(l.transitionUntil)
}

func (l *LockingShelf) Base() *Shelf             { return l.inner.Base() }
func (l *LockingShelf) Reference() string        { return l.inner.Reference() }
func (l *LockingShelf) Ignored() bool            { return l.inner.Ignored() }
func (l *LockingShelf) Position() vmath.Vec2     { return l.inner.Position() }
func (l *LockingShelf) SetPosition(v vmath.Vec2) { l.inner.SetPosition(v) }
func (l *LockingShelf) Bounds() vmath.Rect       { return l.inner.Bounds() }
func (l *LockingShelf) IsEmpty() bool            { return l.inner.IsEmpty() }
func (l *LockingShelf) IsComplete() bool         { return l.inner.IsComplete() }
func (l *LockingShelf) Disposed() bool           { return l.inner.Disposed() }

// CanPickUpAt is the inner capability ANDed with the gate
func (l *LockingShelf) CanPickUpAt(slot int) bool {
	return !l.locked && l.inner.CanPickUpAt(slot)
}

// CanDropAt is the inner capability ANDed with the gate
func (l *LockingShelf) CanDropAt(slot int) bool {
	return !l.locked && l.inner.CanDropAt(slot)
}

// FindShelfSlot reports nothing while locked; only the unlocked inner
// shelf can be targeted
func (l *LockingShelf) FindShelfSlot(bounds vmath.Rect) (SlotHit, bool) {
	if l.locked {
		return SlotHit{}, false
	}
	return l.inner.FindShelfSlot(bounds)
}

func (l *LockingShelf) CheckForMatches(now time.Time, stats *Stats) ([]*Product, bool) {
	return l.inner.CheckForMatches(now, stats)
}

func (l *LockingShelf) Update(lv *Level, dt time.Duration) {
	l.inner.Update(lv, dt)
}

// Reevaluate recomputes the gate from the stats snapshot. Called by the
// level once per tick, after stat aggregation. Each edge starts the
// visual transition and publishes a lock event
func (l *LockingShelf) Reevaluate(now time.Time, stats *Stats, env CondEnv, queue *events.EventQueue) {
	next := l.cond.Locked(stats, env)
	if !l.evaluated {
		l.evaluated = true
		l.locked = next
		return
	}
	if next == l.locked {
		return
	}
	l.locked = next
	l.transitionUntil = now.Add(constants.LockTransitionDuration)
	if queue != nil {
		queue.Push(events.GameEvent{
			Type:      events.EventLockChanged,
			Timestamp: now,
			Payload:   &events.LockChangedPayload{ShelfRef: l.Reference(), Locked: next},
		})
	}
}
