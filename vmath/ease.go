package vmath

// Easing curves for container actor movement. Input t is normalized time;
// callers clamp to [0, 1] before sampling.

// EaseLinear is the identity curve
func EaseLinear(t float64) float64 { return t }

// EaseOutQuad decelerates toward the target
func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseOutBounce is the standard piecewise bounce-out curve used by
// collapse compaction: children overshoot-settle into their targets
func EaseOutBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
