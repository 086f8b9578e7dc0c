package ui

import (
	"holdscroll/internal/domain"
	"holdscroll/internal/ui/views"
)

type region int

const (
	regionNone region = iota
	regionList
	regionTrack
	regionUp
	regionDown
)

// layout places the screen parts top to bottom: title, list with the
// scrollbar track on its right, the up and down buttons, and the help row.
type layout struct {
	width      int
	height     int
	listTop    int
	listHeight int
	trackWidth int
	upTop      int
	downTop    int
}

func computeLayout(width, height, trackWidth int) layout {
	listHeight := height - 1 - 2*views.ButtonRows - 1
	if listHeight < 1 {
		listHeight = 1
	}
	if trackWidth > width-1 {
		trackWidth = width - 1
	}
	if trackWidth < 0 {
		trackWidth = 0
	}

	l := layout{
		width:      width,
		height:     height,
		listTop:    1,
		listHeight: listHeight,
		trackWidth: trackWidth,
	}
	l.upTop = l.listTop + l.listHeight
	l.downTop = l.upTop + views.ButtonRows
	return l
}

// regionAt hit-tests a terminal cell
func (l layout) regionAt(x, y int) region {
	if x < 0 || x >= l.width {
		return regionNone
	}
	switch {
	case y >= l.listTop && y < l.listTop+l.listHeight:
		if l.trackWidth > 0 && x >= l.width-l.trackWidth {
			return regionTrack
		}
		return regionList
	case y >= l.upTop && y < l.upTop+views.ButtonRows:
		return regionUp
	case y >= l.downTop && y < l.downTop+views.ButtonRows:
		return regionDown
	default:
		return regionNone
	}
}

// trackRow converts a screen row to a row on the scrollbar track; it may lie
// outside the track while dragging
func (l layout) trackRow(y int) int {
	return y - l.listTop
}

func buttonDirection(r region) domain.Direction {
	switch r {
	case regionUp:
		return domain.DirectionUp
	case regionDown:
		return domain.DirectionDown
	default:
		return 0
	}
}
