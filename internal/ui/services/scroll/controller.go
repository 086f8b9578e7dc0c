package scroll

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"holdscroll/internal/domain"
	"holdscroll/internal/eventbus"
)

// Controller owns the scroll position of the list. Every move is applied
// immediately and clamped; observers are notified through the bus before the
// move returns.
type Controller struct {
	bus    eventbus.EventBus
	logger zerolog.Logger

	heights  []int
	prefix   []int // prefix[i] is the content row where item i starts
	viewport int

	pos        domain.ScrollPosition
	stopAtEnd  bool
	gesture    bool
	animating  bool
	inProgress bool
}

// NewController creates a controller with no items
func NewController(bus eventbus.EventBus, opts ...Option) *Controller {
	c := &Controller{
		bus:    bus,
		logger: zerolog.Nop(),
		prefix: []int{0},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetItems replaces the item heights, in rows. Heights below one row count
// as one row.
func (c *Controller) SetItems(heights []int) {
	c.heights = make([]int, len(heights))
	c.prefix = make([]int, len(heights)+1)
	for i, h := range heights {
		if h < 1 {
			h = 1
		}
		c.heights[i] = h
		c.prefix[i+1] = c.prefix[i] + h
	}
	c.setAbsolute(c.AbsoluteOffset())
}

// SetViewportHeight updates the number of rows available to the list
func (c *Controller) SetViewportHeight(rows int) {
	if rows < 0 {
		rows = 0
	}
	c.viewport = rows
	c.setAbsolute(c.AbsoluteOffset())
}

// Position returns the current scroll position
func (c *Controller) Position() domain.ScrollPosition {
	return c.pos
}

// ItemCount returns the number of items
func (c *Controller) ItemCount() int {
	return len(c.heights)
}

// ItemHeight returns the height of item i in rows, 0 when out of range
func (c *Controller) ItemHeight(i int) int {
	if i < 0 || i >= len(c.heights) {
		return 0
	}
	return c.heights[i]
}

// ContentHeight returns the total height of all items in rows
func (c *Controller) ContentHeight() int {
	return c.prefix[len(c.prefix)-1]
}

// ViewportHeight returns the rows available to the list
func (c *Controller) ViewportHeight() int {
	return c.viewport
}

// AbsoluteOffset returns the content row at the top of the viewport
func (c *Controller) AbsoluteOffset() float64 {
	return c.absolute(c.pos)
}

// Metrics returns the layout of the current pass
func (c *Controller) Metrics() domain.ViewportMetrics {
	m := domain.ViewportMetrics{
		ViewportHeight: float64(c.viewport),
		TotalItems:     len(c.heights),
	}
	if len(c.heights) == 0 {
		return m
	}
	m.FirstItemHeight = float64(c.heights[c.pos.Index])

	top := c.AbsoluteOffset()
	bottom := top + float64(c.viewport)
	for i := c.pos.Index; i < len(c.heights); i++ {
		if float64(c.prefix[i]) >= bottom {
			break
		}
		m.VisibleItems++
	}
	return m
}

// MoveBy moves delta items from the current index with the offset reset.
// It returns false when the position is already at the requested edge.
func (c *Controller) MoveBy(delta int) bool {
	if delta == 0 {
		return false
	}
	return c.moveTo(c.stepTarget(c.pos, delta))
}

// MoveTo jumps to the given item with the offset reset
func (c *Controller) MoveTo(index int) bool {
	return c.moveTo(c.indexTarget(index))
}

// MoveByPixels shifts the viewport by px content rows
func (c *Controller) MoveByPixels(px float64) bool {
	if px == 0 || math.IsNaN(px) {
		return false
	}
	return c.moveTo(c.clamp(c.fromAbsolute(c.AbsoluteOffset() + px)))
}

// ScrollByItems moves by a fractional number of items, measured in item
// space so that every item counts the same regardless of its height
func (c *Controller) ScrollByItems(delta float64) bool {
	if delta == 0 || math.IsNaN(delta) || len(c.heights) == 0 {
		return false
	}

	u := float64(c.pos.Index) + c.pos.Offset/float64(c.heights[c.pos.Index]) + delta
	if u < 0 {
		u = 0
	}
	last := float64(len(c.heights) - 1)
	if u > last {
		u = last
	}
	index := int(math.Floor(u))
	target := domain.ScrollPosition{
		Index:  index,
		Offset: (u - float64(index)) * float64(c.heights[index]),
	}
	return c.moveTo(c.clamp(target))
}

// BeginGesture marks the start of a pointer-driven scroll
func (c *Controller) BeginGesture() {
	c.gesture = true
	c.updateInProgress()
}

// EndGesture marks the end of a pointer-driven scroll
func (c *Controller) EndGesture() {
	c.gesture = false
	c.updateInProgress()
}

// ScrollInProgress reports whether a gesture or an animation is moving the list
func (c *Controller) ScrollInProgress() bool {
	return c.inProgress
}

func (c *Controller) setAnimating(active bool) {
	c.animating = active
	c.updateInProgress()
}

func (c *Controller) updateInProgress() {
	inProgress := c.gesture || c.animating
	if inProgress == c.inProgress {
		return
	}
	c.inProgress = inProgress
	c.publish(domain.ScrollStateChangedEvent{InProgress: inProgress})
}

// stepTarget returns the clamped position delta items away from base
func (c *Controller) stepTarget(base domain.ScrollPosition, delta int) domain.ScrollPosition {
	return c.indexTarget(base.Index + delta)
}

func (c *Controller) indexTarget(index int) domain.ScrollPosition {
	if len(c.heights) == 0 {
		return domain.ScrollPosition{}
	}
	if index < 0 {
		index = 0
	}
	if index > len(c.heights)-1 {
		index = len(c.heights) - 1
	}
	return c.clamp(domain.ScrollPosition{Index: index})
}

func (c *Controller) moveTo(target domain.ScrollPosition) bool {
	if target == c.pos {
		return false
	}
	from := c.pos
	c.pos = target
	c.logger.Trace().
		Int("from_index", from.Index).
		Int("to_index", target.Index).
		Float64("to_offset", target.Offset).
		Msg("position changed")
	c.publish(domain.PositionChangedEvent{From: from, To: target})
	return true
}

// setAbsolute moves to a content row, clamped
func (c *Controller) setAbsolute(abs float64) bool {
	return c.moveTo(c.clamp(c.fromAbsolute(abs)))
}

// clamp keeps a position inside the scrollable range
func (c *Controller) clamp(p domain.ScrollPosition) domain.ScrollPosition {
	if len(c.heights) == 0 {
		return domain.ScrollPosition{}
	}
	abs := c.absolute(p)
	if abs > c.maxAbsolute() {
		return c.fromAbsolute(c.maxAbsolute())
	}
	if abs < 0 {
		return domain.ScrollPosition{}
	}
	if p.Index < 0 || p.Index >= len(c.heights) || p.Offset >= float64(c.heights[p.Index]) {
		return c.fromAbsolute(abs)
	}
	return p
}

// maxAbsolute is the largest content row allowed at the top of the viewport
func (c *Controller) maxAbsolute() float64 {
	if len(c.heights) == 0 {
		return 0
	}
	limit := float64(c.prefix[len(c.heights)-1])
	if c.stopAtEnd {
		end := float64(c.ContentHeight() - c.viewport)
		if end < 0 {
			end = 0
		}
		limit = math.Min(limit, end)
	}
	return limit
}

func (c *Controller) absolute(p domain.ScrollPosition) float64 {
	if len(c.heights) == 0 {
		return 0
	}
	index := p.Index
	if index < 0 {
		index = 0
	}
	if index > len(c.heights)-1 {
		index = len(c.heights) - 1
	}
	return float64(c.prefix[index]) + p.Offset
}

// fromAbsolute converts a content row to the item containing it
func (c *Controller) fromAbsolute(abs float64) domain.ScrollPosition {
	n := len(c.heights)
	if n == 0 || abs <= 0 || math.IsNaN(abs) {
		return domain.ScrollPosition{}
	}
	// first item whose end lies past abs
	index := sort.Search(n, func(i int) bool {
		return float64(c.prefix[i+1]) > abs
	})
	if index >= n {
		return domain.ScrollPosition{Index: n - 1}
	}
	return domain.ScrollPosition{Index: index, Offset: abs - float64(c.prefix[index])}
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
