package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/lunargale/shelfsort/events"
	"github.com/lunargale/shelfsort/game"
)

var allEventTypes = []events.EventType{
	events.EventProductPicked,
	events.EventProductPlaced,
	events.EventDropRejected,
	events.EventMatchFound,
	events.EventShelfCompleted,
	events.EventShelfDisposed,
	events.EventLockChanged,
	events.EventLayerRevealed,
	events.EventLevelCompleted,
}

// eventLogger mirrors every game event to the log for -v runs
type eventLogger struct{}

func (eventLogger) EventTypes() []events.EventType {
	return allEventTypes
}

func (eventLogger) HandleEvent(_ *game.Level, ev events.GameEvent) {
	log.Printf("event %d: %+v", ev.Type, ev.Payload)
}

// notices turns notable rule events into a one-line status message for
// the HUD. Only the most recent message is kept
type notices struct {
	msg string
}

func (n *notices) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventMatchFound,
		events.EventDropRejected,
		events.EventShelfCompleted,
		events.EventLockChanged,
		events.EventLevelCompleted,
	}
}

func (n *notices) HandleEvent(_ *game.Level, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.MatchFoundPayload:
		n.msg = fmt.Sprintf("matched %s (+%d)", strings.Join(p.ProductIDs, " "), p.Points)
	case *events.ProductMovedPayload:
		n.msg = fmt.Sprintf("%s snapped back", p.ProductID)
	case *events.ShelfPayload:
		n.msg = fmt.Sprintf("%s complete", p.ShelfRef)
	case *events.LockChangedPayload:
		if p.Locked {
			n.msg = fmt.Sprintf("%s locked", p.ShelfRef)
		} else {
			n.msg = fmt.Sprintf("%s unlocked", p.ShelfRef)
		}
	default:
		if ev.Type == events.EventLevelCompleted {
			n.msg = "level complete"
		}
	}
}

// Message returns the latest status line, empty before any event
func (n *notices) Message() string {
	return n.msg
}

// Reset clears the status line, used when a level restarts
func (n *notices) Reset() {
	n.msg = ""
}
