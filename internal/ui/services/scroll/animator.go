package scroll

import (
	"time"

	"holdscroll/internal/domain"
)

// Animator drives eased transitions of a Controller. The controller position
// follows the curve on every Tick. The target is re-clamped whenever it is
// read, since the list or viewport may change mid-transition.
type Animator struct {
	c        *Controller
	duration time.Duration
	easing   EasingFunc
	now      func() time.Time

	active bool
	start  time.Time
	from   float64
	to     float64
	target domain.ScrollPosition
}

// NewAnimator creates an animator for the controller
func NewAnimator(c *Controller, opts ...AnimatorOption) *Animator {
	a := &Animator{
		c:        c,
		duration: DefaultDuration,
		easing:   EaseOutCubic,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MoveBy requests a move of delta items relative to the pending target.
// It returns false when the list is already at the requested edge.
func (a *Animator) MoveBy(delta int) bool {
	if delta == 0 {
		return false
	}
	base := a.base()
	return a.animateTo(base, a.c.stepTarget(base, delta))
}

// MoveTo requests a transition to the given item
func (a *Animator) MoveTo(index int) bool {
	return a.animateTo(a.base(), a.c.indexTarget(index))
}

// Tick advances the transition. It returns true while still running.
func (a *Animator) Tick(now time.Time) bool {
	if !a.active {
		return false
	}

	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		a.finish()
		return false
	}

	t := float64(elapsed) / float64(a.duration)
	if t < 0 {
		t = 0
	}
	a.c.setAbsolute(a.from + (a.to-a.from)*a.easing(t))
	return true
}

// Cancel stops the transition where it is
func (a *Animator) Cancel() {
	if !a.active {
		return
	}
	a.active = false
	a.c.setAnimating(false)
}

// Active reports whether a transition is running
func (a *Animator) Active() bool {
	return a.active
}

// Target returns where the running transition ends, or the current position
func (a *Animator) Target() domain.ScrollPosition {
	return a.base()
}

func (a *Animator) base() domain.ScrollPosition {
	if a.active {
		return a.c.clamp(a.target)
	}
	return a.c.Position()
}

func (a *Animator) animateTo(base, target domain.ScrollPosition) bool {
	if target == base {
		return false
	}
	if a.duration <= 0 {
		a.Cancel()
		a.c.moveTo(target)
		return true
	}

	a.target = target
	a.from = a.c.AbsoluteOffset()
	a.to = a.c.absolute(target)
	a.start = a.now()
	if !a.active {
		a.active = true
		a.c.setAnimating(true)
	}
	return true
}

func (a *Animator) finish() {
	a.c.moveTo(a.c.clamp(a.target))
	a.active = false
	a.c.setAnimating(false)
}
