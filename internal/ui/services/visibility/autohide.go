package visibility

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"holdscroll/internal/domain"
	"holdscroll/internal/eventbus"
)

// DefaultDelay is how long the scrollbar stays up after scrolling settles
const DefaultDelay = 800 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// HideMsg fires when a hide timer elapses
type HideMsg struct {
	ID  int
	tag int
}

// Option configures an AutoHide
type Option func(*AutoHide)

// WithDelay sets the idle time before hiding
func WithDelay(d time.Duration) Option {
	return func(a *AutoHide) {
		if d >= 0 {
			a.delay = d
		}
	}
}

// WithAlwaysShow keeps the scrollbar on screen
func WithAlwaysShow(on bool) Option {
	return func(a *AutoHide) {
		a.alwaysShow = on
	}
}

// AutoHide tracks whether the scrollbar is visible. It is shown while the
// list is busy and hidden once it has been idle for the delay.
type AutoHide struct {
	id         int
	tag        int
	bus        eventbus.EventBus
	delay      time.Duration
	alwaysShow bool

	visible bool
	busy    bool
}

// New creates a visible AutoHide; call Init to schedule the first hide
func New(bus eventbus.EventBus, opts ...Option) *AutoHide {
	a := &AutoHide{
		id:      nextID(),
		bus:     bus,
		delay:   DefaultDelay,
		visible: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init schedules the hide that follows the launch flash
func (a *AutoHide) Init() tea.Cmd {
	return a.restart()
}

// Visible reports whether the scrollbar should be drawn
func (a *AutoHide) Visible() bool {
	return a.alwaysShow || a.visible
}

// AlwaysShow reports whether hiding is disabled
func (a *AutoHide) AlwaysShow() bool {
	return a.alwaysShow
}

// SetAlwaysShow toggles hiding. Turning it off starts a fresh timer.
func (a *AutoHide) SetAlwaysShow(on bool) tea.Cmd {
	if a.alwaysShow == on {
		return nil
	}
	a.alwaysShow = on
	if on {
		a.show()
		return nil
	}
	if a.busy {
		return nil
	}
	return a.restart()
}

// SetBusy reports whether a scroll or press is in progress. Busy keeps the
// scrollbar up; going idle starts the hide timer.
func (a *AutoHide) SetBusy(busy bool) tea.Cmd {
	if busy == a.busy {
		return nil
	}
	a.busy = busy
	if busy {
		a.tag++
		a.show()
		return nil
	}
	return a.restart()
}

// Touch shows the scrollbar for an instant change and restarts the timer
func (a *AutoHide) Touch() tea.Cmd {
	a.show()
	if a.busy {
		return nil
	}
	return a.restart()
}

// Update handles hide timers and reports whether visibility changed
func (a *AutoHide) Update(msg tea.Msg) bool {
	hide, ok := msg.(HideMsg)
	if !ok || hide.ID != a.id || hide.tag != a.tag {
		return false
	}
	if a.busy || a.alwaysShow || !a.visible {
		return false
	}
	a.visible = false
	a.publish(false)
	return true
}

func (a *AutoHide) show() {
	if a.visible {
		return
	}
	a.visible = true
	a.publish(true)
}

func (a *AutoHide) restart() tea.Cmd {
	a.tag++
	id, tag := a.id, a.tag
	return tea.Tick(a.delay, func(time.Time) tea.Msg {
		return HideMsg{ID: id, tag: tag}
	})
}

func (a *AutoHide) publish(visible bool) {
	if a.bus != nil {
		a.bus.Publish(domain.VisibilityChangedEvent{Visible: visible})
	}
}
