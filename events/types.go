package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventProductPicked signals a drag began on a pick-up-eligible slot
	// Trigger: Level.BeginDrag | Payload: *ProductMovedPayload
	EventProductPicked EventType = iota

	// EventProductPlaced signals a valid drop into a destination slot
	// Trigger: Level.EndDrag | Payload: *ProductMovedPayload
	EventProductPlaced

	// EventDropRejected signals a release with no eligible destination;
	// the product stayed where it was
	// Trigger: Level.EndDrag | Payload: *ProductMovedPayload
	EventDropRejected

	// EventMatchFound signals a shelf resolved a match group
	// Trigger: Shelf.CheckForMatches | Payload: *MatchFoundPayload
	EventMatchFound

	// EventShelfCompleted signals a referenced shelf reported complete
	// Trigger: Level stat aggregation | Payload: *ShelfPayload
	EventShelfCompleted

	// EventShelfDisposed signals a disappearing shelf finished its exit
	// Trigger: disposal sweep | Payload: *ShelfPayload
	EventShelfDisposed

	// EventLockChanged signals a locking shelf crossed a lock edge
	// Trigger: lock re-evaluation | Payload: *LockChangedPayload
	EventLockChanged

	// EventLayerRevealed signals a deep shelf popped its top layer
	// Trigger: DeepShelf.Update | Payload: *ShelfPayload
	EventLayerRevealed

	// EventLevelCompleted signals every non-ignored shelf is complete
	// Trigger: Level stat aggregation, fired once | Payload: nil
	EventLevelCompleted
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
