package ui

import (
	"time"
)

// frameInterval is the animation frame cadence
const frameInterval = 16 * time.Millisecond

// frameMsg drives the scroll animation while it runs
type frameMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
