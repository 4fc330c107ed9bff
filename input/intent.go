package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // q, ESC, Ctrl+C
	IntentRestart // r
	IntentResize  // Terminal resize event

	// Pointer gesture phases
	IntentPress   // Primary button down
	IntentDrag    // Motion while the primary button is held
	IntentRelease // Primary button up
)

// Intent represents a parsed semantic action.
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	X, Y int // screen cell for pointer intents
}
