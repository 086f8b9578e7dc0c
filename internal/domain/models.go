package domain

// ScrollPosition is the scroll state of the list: the first visible item
// and how many rows of it are scrolled out of view
type ScrollPosition struct {
	Index  int     // first visible item
	Offset float64 // rows of the first item above the viewport, < its height
}

// ViewportMetrics describes the current layout pass
type ViewportMetrics struct {
	ViewportHeight  float64 // rows available to the list
	TotalItems      int
	VisibleItems    int     // items intersecting the viewport, partial ones included
	FirstItemHeight float64 // 0 when unknown
}

// ThumbGeometry is the scrollbar thumb in track rows
type ThumbGeometry struct {
	Top    float64
	Height float64
}

// Drawn reports whether the thumb has any extent
func (g ThumbGeometry) Drawn() bool {
	return g.Height > 0
}

// Bottom returns the row just below the thumb
func (g ThumbGeometry) Bottom() float64 {
	return g.Top + g.Height
}

// Direction is a scroll direction of the list
type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionDown
)

// Sign returns -1 for up and +1 for down
func (d Direction) Sign() int {
	switch d {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// HoldState is the state of the directional buttons
type HoldState int

const (
	HoldIdle HoldState = iota
	HoldUp
	HoldDown
)

// HoldStateFor returns the held state for a direction
func HoldStateFor(d Direction) HoldState {
	switch d {
	case DirectionUp:
		return HoldUp
	case DirectionDown:
		return HoldDown
	default:
		return HoldIdle
	}
}

func (s HoldState) String() string {
	switch s {
	case HoldUp:
		return "held-up"
	case HoldDown:
		return "held-down"
	default:
		return "idle"
	}
}
