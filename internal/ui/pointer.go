package ui

import (
	"holdscroll/internal/domain"
)

// pointerMode is what the held mouse button is doing
type pointerMode int

const (
	pointerIdle pointerMode = iota
	pointerHoldingButton
	pointerDraggingThumb
	pointerTrackPressed
)

func (p pointerMode) String() string {
	switch p {
	case pointerHoldingButton:
		return "holding"
	case pointerDraggingThumb:
		return "dragging"
	case pointerTrackPressed:
		return "track"
	default:
		return "idle"
	}
}

type pointerState struct {
	mode    pointerMode
	dir     domain.Direction // held button
	lastRow int              // track row of the last drag event
}

func (p pointerState) pressed() bool {
	return p.mode != pointerIdle
}
