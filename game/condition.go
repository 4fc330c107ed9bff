package game

import "time"

// ConditionKind selects one of the six lock condition modes
type ConditionKind int

const (
	// ConditionToggleTimer cycles the lock on a fixed period, starting
	// locked. finalCountdownUnlock forces open near the time limit
	ConditionToggleTimer ConditionKind = iota

	// ConditionCountdownTimer unlocks permanently once elapsed time passes
	// a threshold
	ConditionCountdownTimer

	// ConditionMatchProducts unlocks once total matches reach a threshold,
	// optionally restricted to products matching a reference product.
	// Counters never decrease, so this never re-locks
	ConditionMatchProducts

	// ConditionCompleteShelves unlocks once enough distinct referenced
	// shelves report complete
	ConditionCompleteShelves

	// ConditionCompleteShelf unlocks once one specific referenced shelf
	// reports complete
	ConditionCompleteShelf

	// ConditionPlaceProduct gates on a product occupying a specific shelf
	// slot. Latch mode consults the append-only placement log (once
	// unlocked, stays unlocked); non-latch mode consults the current
	// snapshot and re-locks when the product is removed
	ConditionPlaceProduct
)

// LockCondition is the tagged union evaluated each tick by a locking
// shelf. Kind selects the mode; only that mode's parameters apply
type LockCondition struct {
	Kind ConditionKind

	Period               time.Duration // toggle-timer phase length
	FinalCountdownUnlock time.Duration // toggle-timer, 0 = off
	UnlockAfter          time.Duration // countdown-timer threshold

	Count     int    // match-products / complete-shelves threshold
	ProductID string // match-products restriction, place-product requirement
	ShelfRef  string // complete-shelf / place-product target
	Slot      int    // place-product target slot

	Latch    bool // place-product: historical placement suffices
	Inverted bool // place-product: negate the final result
}

// CondEnv is the level-owned context conditions evaluate against besides
// the stats themselves
type CondEnv struct {
	TimeLimit time.Duration // 0 = no level time limit
	Catalog   *ProductCatalog
}

// Locked evaluates the condition against the stats snapshot. Pure: no
// state is kept between ticks, so evaluation order cannot matter
func (c LockCondition) Locked(stats *Stats, env CondEnv) bool {
	switch c.Kind {
	case ConditionToggleTimer:
		if c.FinalCountdownUnlock > 0 && env.TimeLimit > 0 &&
			env.TimeLimit-stats.Elapsed <= c.FinalCountdownUnlock {
			return false
		}
		if c.Period <= 0 {
			return false
		}
		phase := stats.Elapsed / c.Period
		return phase%2 == 0

	case ConditionCountdownTimer:
		return stats.Elapsed < c.UnlockAfter

	case ConditionMatchProducts:
		return c.matchTotal(stats, env) < c.Count

	case ConditionCompleteShelves:
		return stats.CompletedShelfCount < c.Count

	case ConditionCompleteShelf:
		return !stats.ShelfCompleted[c.ShelfRef]

	case ConditionPlaceProduct:
		var unlocked bool
		if c.Latch {
			unlocked = stats.placedEver(c.ShelfRef, c.Slot, c.ProductID)
		} else {
			cur := stats.slotContent(c.ShelfRef, c.Slot)
			unlocked = cur != "" && (c.ProductID == "" || cur == c.ProductID)
		}
		if c.Inverted {
			unlocked = !unlocked
		}
		return !unlocked
	}
	return false
}

// matchTotal counts the qualifying matches. Unrestricted, that is every
// match; restricted, only matches of the reference product itself and of
// the products in its authored match set
func (c LockCondition) matchTotal(stats *Stats, env CondEnv) int {
	if c.ProductID == "" {
		return stats.TotalMatches
	}
	total := stats.ProductMatches[c.ProductID]
	if env.Catalog != nil {
		for _, id := range env.Catalog.MatchSet(c.ProductID) {
			if id != c.ProductID {
				total += stats.ProductMatches[id]
			}
		}
	}
	return total
}
