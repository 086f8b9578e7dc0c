package hold

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"holdscroll/internal/domain"
	"holdscroll/internal/eventbus"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Repeater turns a held directional button into repeated moves.
//
// A press moves one item at once and starts a tick chain; every tick at the
// configured interval issues another move until the button is released.
// Each press gets a new tag, so ticks from an earlier press are ignored.
type Repeater struct {
	id       int
	tag      int
	mover    Mover
	bus      eventbus.EventBus
	interval time.Duration
	mode     Mode
	maxStep  int

	state   domain.HoldState
	repeats int
}

// NewRepeater creates an idle repeater
func NewRepeater(mover Mover, bus eventbus.EventBus, opts ...Option) *Repeater {
	r := &Repeater{
		id:       nextID(),
		mover:    mover,
		bus:      bus,
		interval: DefaultInterval,
		mode:     ModeConstant,
		maxStep:  DefaultMaxStep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the repeater's unique identifier
func (r *Repeater) ID() int {
	return r.id
}

// State returns the current hold state
func (r *Repeater) State() domain.HoldState {
	return r.state
}

// Held reports whether a button is held
func (r *Repeater) Held() bool {
	return r.state != domain.HoldIdle
}

// RepeatCount returns the ticks fired during the current press
func (r *Repeater) RepeatCount() int {
	return r.repeats
}

// Press starts holding the button for dir. Pressing while the other button
// is held replaces the hold.
func (r *Repeater) Press(dir domain.Direction) tea.Cmd {
	state := domain.HoldStateFor(dir)
	if state == domain.HoldIdle {
		return nil
	}
	if state == r.state {
		return nil
	}
	if r.Held() {
		r.end()
	}

	r.state = state
	r.repeats = 0
	r.tag++
	r.publish(domain.HoldStartedEvent{Direction: dir})

	r.mover.MoveBy(dir.Sign())
	return r.tick()
}

// Release stops the hold; no further moves are issued
func (r *Repeater) Release() {
	if !r.Held() {
		return
	}
	r.end()
}

// Update handles repeat ticks
func (r *Repeater) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok {
		return nil
	}
	if tick.ID != r.id || tick.tag != r.tag || !r.Held() {
		return nil
	}

	r.repeats++
	dir := heldDirection(r.state)
	r.mover.MoveBy(dir.Sign() * r.step())
	return r.tick()
}

// step is the number of items moved by the current tick
func (r *Repeater) step() int {
	if r.mode != ModeAccelerating {
		return 1
	}
	step := 1 + r.repeats
	if r.maxStep > 0 && step > r.maxStep {
		step = r.maxStep
	}
	return step
}

func (r *Repeater) end() {
	dir := heldDirection(r.state)
	r.state = domain.HoldIdle
	r.tag++
	r.publish(domain.HoldEndedEvent{Direction: dir, Repeats: r.repeats})
}

func (r *Repeater) tick() tea.Cmd {
	id, tag := r.id, r.tag
	return tea.Tick(r.interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id, tag: tag}
	})
}

func (r *Repeater) publish(event eventbus.DomainEvent) {
	if r.bus != nil {
		r.bus.Publish(event)
	}
}
