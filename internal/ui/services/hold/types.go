package hold

import (
	"time"

	"holdscroll/internal/domain"
)

// Mover receives the scroll requests issued while a button is held
type Mover interface {
	MoveBy(delta int) bool
}

// Mode selects how the step grows while held
type Mode string

const (
	// ModeConstant moves one item per tick
	ModeConstant Mode = "constant"
	// ModeAccelerating adds one item to the step on every tick
	ModeAccelerating Mode = "accelerating"
)

// ParseMode validates a configured mode name
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeConstant, ModeAccelerating:
		return Mode(s), true
	case "":
		return ModeConstant, true
	default:
		return "", false
	}
}

const (
	// DefaultInterval is the repeat cadence
	DefaultInterval = 100 * time.Millisecond
	// DefaultMaxStep caps the accelerating step
	DefaultMaxStep = 10
)

// TickMsg is sent on every repeat tick of a press
type TickMsg struct {
	Time time.Time
	ID   int
	tag  int
}

// Option configures a Repeater
type Option func(*Repeater)

// WithInterval sets the repeat cadence
func WithInterval(d time.Duration) Option {
	return func(r *Repeater) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithMode sets the step mode
func WithMode(m Mode) Option {
	return func(r *Repeater) {
		r.mode = m
	}
}

// WithMaxStep caps the accelerating step; values below one mean no cap
func WithMaxStep(n int) Option {
	return func(r *Repeater) {
		r.maxStep = n
	}
}

func heldDirection(s domain.HoldState) domain.Direction {
	switch s {
	case domain.HoldUp:
		return domain.DirectionUp
	case domain.HoldDown:
		return domain.DirectionDown
	default:
		return 0
	}
}
