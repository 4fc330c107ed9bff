package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = 50 * time.Millisecond
)

// Matching and placement timing
const (
	// DisappearStagger delays each matched product's disappear start by its
	// index within the match group. Visual only
	DisappearStagger = 80 * time.Millisecond

	// DisappearDuration is how long a product's exit animation runs before
	// its slot is actually vacated
	DisappearDuration = 250 * time.Millisecond

	// DeepLayerDelay is the pause between a deep shelf's top layer emptying
	// and the next layer being revealed
	DeepLayerDelay = 400 * time.Millisecond

	// ShelfExitDuration is the exit animation of a disappearing shelf after
	// its inner shelf completes
	ShelfExitDuration = 450 * time.Millisecond

	// LockTransitionDuration is the visual open/close transition on every
	// lock edge. Carries no rule state
	LockTransitionDuration = 300 * time.Millisecond
)

// Collapse compaction
const (
	// CollapseMoveDuration is the bounce ease duration for one compaction move
	CollapseMoveDuration = 500 * time.Millisecond

	// CollapseSettleTolerance is the distance below which a child counts as
	// settled on its target, in cells
	CollapseSettleTolerance = 0.05
)

// Shelf geometry, in grid cells
const (
	SlotWidth  = 5.0
	SlotHeight = 3.0
)
