package scroll

import "strings"

// EasingFunc maps time progress (0-1) to value progress (0-1)
type EasingFunc func(t float64) float64

// Easing curves
var (
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}
)

var easings = map[string]EasingFunc{
	"linear":            EaseLinear,
	"ease-out-quad":     EaseOutQuad,
	"ease-out-cubic":    EaseOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
}

// EasingByName resolves a configured easing name
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// EasingNames lists the accepted easing names
func EasingNames() []string {
	return []string{"linear", "ease-out-quad", "ease-out-cubic", "ease-in-out-cubic"}
}
