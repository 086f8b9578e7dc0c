package scroll

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Controller
type Option func(*Controller)

// WithStopAtEnd keeps the last item at the bottom of the viewport instead of
// letting it scroll up to the top
func WithStopAtEnd(stop bool) Option {
	return func(c *Controller) {
		c.stopAtEnd = stop
	}
}

// WithLogger sets the controller logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// AnimatorOption configures an Animator
type AnimatorOption func(*Animator)

// WithDuration sets the length of a transition; zero moves immediately
func WithDuration(d time.Duration) AnimatorOption {
	return func(a *Animator) {
		if d < 0 {
			d = 0
		}
		a.duration = d
	}
}

// WithEasing sets the easing curve
func WithEasing(fn EasingFunc) AnimatorOption {
	return func(a *Animator) {
		if fn != nil {
			a.easing = fn
		}
	}
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) AnimatorOption {
	return func(a *Animator) {
		if now != nil {
			a.now = now
		}
	}
}

// DefaultDuration is the transition length used when none is configured
const DefaultDuration = 90 * time.Millisecond
