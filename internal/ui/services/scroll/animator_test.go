package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdscroll/internal/domain"
	"holdscroll/internal/eventbus"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) time.Time {
	f.now = f.now.Add(d)
	return f.now
}

func newTestAnimator(t *testing.T, duration time.Duration) (*Animator, *Controller, *fakeClock, eventbus.EventBus) {
	t.Helper()
	c, bus := newTestController(t, 50, 3, 30)
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	a := NewAnimator(c,
		WithDuration(duration),
		WithEasing(EaseLinear),
		WithClock(clock.Now),
	)
	return a, c, clock, bus
}

func TestAnimatorInterpolatesAndLandsOnTarget(t *testing.T) {
	a, c, clock, _ := newTestAnimator(t, 100*time.Millisecond)

	require.True(t, a.MoveBy(2))
	assert.True(t, a.Active())
	assert.True(t, c.ScrollInProgress())
	assert.Equal(t, domain.ScrollPosition{}, c.Position(), "nothing moves before the first frame")

	assert.True(t, a.Tick(clock.Advance(50*time.Millisecond)))
	assert.Equal(t, domain.ScrollPosition{Index: 1, Offset: 0}, c.Position())

	assert.True(t, a.Tick(clock.Advance(25*time.Millisecond)))
	assert.Equal(t, 1, c.Position().Index)
	assert.InDelta(t, 1.5, c.Position().Offset, 1e-9)

	assert.False(t, a.Tick(clock.Advance(40*time.Millisecond)))
	assert.Equal(t, domain.ScrollPosition{Index: 2}, c.Position())
	assert.False(t, a.Active())
	assert.False(t, c.ScrollInProgress())
}

func TestAnimatorAccumulatesPendingTarget(t *testing.T) {
	a, c, clock, _ := newTestAnimator(t, 100*time.Millisecond)

	a.MoveBy(1)
	a.Tick(clock.Advance(50 * time.Millisecond))
	a.MoveBy(1)

	assert.Equal(t, domain.ScrollPosition{Index: 2}, a.Target())

	a.Tick(clock.Advance(200 * time.Millisecond))
	assert.Equal(t, domain.ScrollPosition{Index: 2}, c.Position())
}

func TestAnimatorReclampsTargetAfterResize(t *testing.T) {
	c, _ := newTestController(t, 50, 3, 30, WithStopAtEnd(true))
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	a := NewAnimator(c, WithDuration(90*time.Millisecond), WithEasing(EaseLinear), WithClock(clock.Now))

	require.True(t, a.MoveTo(49))
	require.Equal(t, domain.ScrollPosition{Index: 40}, a.Target())
	a.Tick(clock.Advance(30 * time.Millisecond))

	// A taller viewport lowers the last resting offset to 150-60
	c.SetViewportHeight(60)
	assert.Equal(t, domain.ScrollPosition{Index: 30}, a.Target())

	assert.False(t, a.Tick(clock.Advance(time.Second)))
	assert.Equal(t, domain.ScrollPosition{Index: 30}, c.Position())
	assert.InDelta(t, 90.0, c.AbsoluteOffset(), 1e-9)
}

func TestAnimatorReclampsTargetAfterItemsShrink(t *testing.T) {
	a, c, clock, _ := newTestAnimator(t, 100*time.Millisecond)

	require.True(t, a.MoveTo(40))
	a.Tick(clock.Advance(10 * time.Millisecond))

	c.SetItems(uniform(10, 3))
	assert.False(t, a.Tick(clock.Advance(time.Second)))
	assert.Equal(t, domain.ScrollPosition{Index: 9}, c.Position())
}

func TestAnimatorReportsBoundary(t *testing.T) {
	a, c, clock, _ := newTestAnimator(t, 100*time.Millisecond)

	assert.False(t, a.MoveBy(-1))
	assert.False(t, a.Active())

	a.MoveTo(49)
	a.Tick(clock.Advance(time.Second))
	require.Equal(t, 49, c.Position().Index)

	assert.False(t, a.MoveBy(1))
	assert.False(t, a.MoveBy(0))
}

func TestAnimatorCancelStopsInPlace(t *testing.T) {
	a, c, clock, bus := newTestAnimator(t, 100*time.Millisecond)

	var states []bool
	bus.Subscribe(eventbus.EventScrollStateChanged, func(e eventbus.DomainEvent) {
		states = append(states, e.(domain.ScrollStateChangedEvent).InProgress)
	})

	a.MoveBy(4)
	a.Tick(clock.Advance(50 * time.Millisecond))
	mid := c.Position()
	a.Cancel()

	assert.False(t, a.Active())
	assert.False(t, a.Tick(clock.Advance(time.Second)))
	assert.Equal(t, mid, c.Position())
	assert.Equal(t, domain.ScrollPosition{Index: 2}, mid)
	assert.Equal(t, []bool{true, false}, states)

	a.Cancel() // idempotent
	assert.Equal(t, []bool{true, false}, states)
}

func TestAnimatorWithoutDurationMovesImmediately(t *testing.T) {
	a, c, _, _ := newTestAnimator(t, 0)

	assert.True(t, a.MoveBy(3))
	assert.False(t, a.Active())
	assert.Equal(t, domain.ScrollPosition{Index: 3}, c.Position())

	assert.True(t, a.MoveTo(-1))
	assert.Equal(t, domain.ScrollPosition{}, c.Position())
}

func TestEasingByName(t *testing.T) {
	for _, name := range EasingNames() {
		fn, ok := EasingByName(name)
		require.True(t, ok, name)
		assert.InDelta(t, 0.0, fn(0), 1e-9, name)
		assert.InDelta(t, 1.0, fn(1), 1e-9, name)
	}

	_, ok := EasingByName(" Ease-Out-Cubic ")
	assert.True(t, ok)

	_, ok = EasingByName("bounce")
	assert.False(t, ok)
}
