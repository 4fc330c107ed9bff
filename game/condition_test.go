package game

import (
	"testing"
	"time"
)

func statsAt(elapsed time.Duration) *Stats {
	s := NewStats()
	s.Elapsed = elapsed
	return s
}

func TestToggleTimerCycles(t *testing.T) {
	cond := LockCondition{Kind: ConditionToggleTimer, Period: 5 * time.Second}
	env := CondEnv{}

	tests := []struct {
		elapsed time.Duration
		locked  bool
	}{
		{0, true},
		{4 * time.Second, true},
		{5 * time.Second, false},
		{9 * time.Second, false},
		{10 * time.Second, true},
		{15 * time.Second, false},
	}
	for _, tt := range tests {
		if got := cond.Locked(statsAt(tt.elapsed), env); got != tt.locked {
			t.Errorf("elapsed %v: locked = %v, want %v", tt.elapsed, got, tt.locked)
		}
	}
}

func TestToggleTimerFinalCountdownForcesOpen(t *testing.T) {
	cond := LockCondition{
		Kind:                 ConditionToggleTimer,
		Period:               5 * time.Second,
		FinalCountdownUnlock: 10 * time.Second,
	}
	env := CondEnv{TimeLimit: 60 * time.Second}

	// 52s elapsed falls in a locked phase, but only 8s remain
	if cond.Locked(statsAt(52*time.Second), env) {
		t.Error("locked inside the final countdown window")
	}
	// 49s elapsed: 11s remain, outside the window, phase rules apply
	if !cond.Locked(statsAt(49*time.Second), env) {
		t.Error("unlocked outside the final countdown window during a locked phase")
	}
	// Without a time limit the window never applies
	if !cond.Locked(statsAt(52*time.Second), CondEnv{}) {
		t.Error("final countdown applied with no level time limit")
	}
}

func TestCountdownTimerUnlocksPermanently(t *testing.T) {
	cond := LockCondition{Kind: ConditionCountdownTimer, UnlockAfter: 30 * time.Second}
	env := CondEnv{}

	if !cond.Locked(statsAt(29*time.Second), env) {
		t.Error("unlocked before the threshold")
	}
	if cond.Locked(statsAt(30*time.Second), env) {
		t.Error("locked at the threshold")
	}
	if cond.Locked(statsAt(5*time.Minute), env) {
		t.Error("re-locked after the threshold")
	}
}

func TestMatchProductsThreshold(t *testing.T) {
	cond := LockCondition{Kind: ConditionMatchProducts, Count: 3}
	env := CondEnv{}

	s := statsAt(0)
	s.TotalMatches = 2
	if !cond.Locked(s, env) {
		t.Error("unlocked below the threshold")
	}
	s.TotalMatches = 3
	if cond.Locked(s, env) {
		t.Error("locked at the threshold")
	}
}

func TestMatchProductsRestrictedToReference(t *testing.T) {
	catalog := catalogFor(t, mutualDefs("red", "blue", "green"))
	cond := LockCondition{Kind: ConditionMatchProducts, Count: 2, ProductID: "red"}
	env := CondEnv{Catalog: catalog}

	s := statsAt(0)
	s.TotalMatches = 10
	s.ProductMatches["unrelated"] = 10
	if !cond.Locked(s, env) {
		t.Error("unrelated matches satisfied a restricted condition")
	}

	s.ProductMatches["red"] = 1
	s.ProductMatches["blue"] = 1 // blue is in red's match set
	if cond.Locked(s, env) {
		t.Error("locked although reference-related matches reached the threshold")
	}
}

func TestCompleteShelvesThreshold(t *testing.T) {
	cond := LockCondition{Kind: ConditionCompleteShelves, Count: 2}
	env := CondEnv{}

	s := statsAt(0)
	s.CompletedShelfCount = 1
	if !cond.Locked(s, env) {
		t.Error("unlocked with one of two required shelves complete")
	}
	s.CompletedShelfCount = 2
	if cond.Locked(s, env) {
		t.Error("locked with two of two required shelves complete")
	}
}

func TestCompleteShelfSingle(t *testing.T) {
	cond := LockCondition{Kind: ConditionCompleteShelf, ShelfRef: "goal"}
	env := CondEnv{}

	s := statsAt(0)
	if !cond.Locked(s, env) {
		t.Error("unlocked before the referenced shelf completed")
	}
	s.ShelfCompleted["goal"] = true
	if cond.Locked(s, env) {
		t.Error("locked after the referenced shelf completed")
	}
}

func TestPlaceProductLatchStaysUnlocked(t *testing.T) {
	cond := LockCondition{Kind: ConditionPlaceProduct, ShelfRef: "altar", Slot: 1, ProductID: "gem", Latch: true}
	env := CondEnv{}

	s := statsAt(0)
	if !cond.Locked(s, env) {
		t.Error("latch unlocked with an empty history")
	}

	s.recordPlacement("altar", 1, "gem")
	s.CurrentPlacement["altar"] = []string{"", "gem"}
	if cond.Locked(s, env) {
		t.Error("latch locked after the qualifying placement")
	}

	// Product removed afterwards: the log entry keeps the latch open
	s.CurrentPlacement["altar"] = []string{"", ""}
	if cond.Locked(s, env) {
		t.Error("latch re-locked after the product was removed")
	}
}

func TestPlaceProductNonLatchTracksCurrentState(t *testing.T) {
	cond := LockCondition{Kind: ConditionPlaceProduct, ShelfRef: "altar", Slot: 0, ProductID: "gem"}
	env := CondEnv{}

	s := statsAt(0)
	s.recordPlacement("altar", 0, "gem")
	s.CurrentPlacement["altar"] = []string{"gem"}
	if cond.Locked(s, env) {
		t.Error("locked while the qualifying product occupies the slot")
	}

	s.CurrentPlacement["altar"] = []string{""}
	if !cond.Locked(s, env) {
		t.Error("non-latch stayed unlocked after removal")
	}

	// A different product does not qualify
	s.CurrentPlacement["altar"] = []string{"rock"}
	if !cond.Locked(s, env) {
		t.Error("non-matching product unlocked the condition")
	}
}

func TestPlaceProductAnyProductAndInverted(t *testing.T) {
	any := LockCondition{Kind: ConditionPlaceProduct, ShelfRef: "pad", Slot: 0}
	env := CondEnv{}

	s := statsAt(0)
	s.CurrentPlacement["pad"] = []string{"whatever"}
	if any.Locked(s, env) {
		t.Error("any-product condition locked with an occupant present")
	}

	inverted := any
	inverted.Inverted = true
	if !inverted.Locked(s, env) {
		t.Error("inverted condition unlocked with an occupant present")
	}
	s.CurrentPlacement["pad"] = []string{""}
	if inverted.Locked(s, env) {
		t.Error("inverted condition locked with the slot empty")
	}
}
