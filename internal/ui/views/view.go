package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ReadyMarker is printed in the title on every sized frame when running under the PTY tests
const ReadyMarker = "__READY__"

// ButtonRows is the height of each directional button
const ButtonRows = 3

// ListItem is an item intersecting the list viewport
type ListItem struct {
	Label string
	Rows  int // full item height
	Skip  int // rows scrolled out above the viewport
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Height     int
	ListHeight int
	TrackWidth int

	Items []ListItem

	ScrollbarVisible bool
	ThumbStart       int
	ThumbEnd         int
	ThumbActive      bool

	UpPressed   bool
	DownPressed bool

	FirstVisible int // 1-based, 0 when the list is empty
	TotalItems   int
	AlwaysShow   bool
	HelpLine     string
	Ready        bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return "Loading..."
	}

	lines := make([]string, 0, state.Height)
	lines = append(lines, r.renderTitle(state))
	lines = append(lines, r.renderList(state)...)
	lines = append(lines, r.renderButton("↑", state.Width, state.UpPressed)...)
	lines = append(lines, r.renderButton("↓", state.Width, state.DownPressed)...)
	lines = append(lines, r.styles.Help.MaxWidth(state.Width).Render(state.HelpLine))

	if len(lines) > state.Height {
		lines = lines[:state.Height]
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("holdscroll")
	if state.Ready {
		logo += " " + ReadyMarker
	}

	right := fmt.Sprintf("item %d/%d", state.FirstVisible, state.TotalItems)
	if state.AlwaysShow {
		right = "[always] " + right
	}
	right = r.styles.Position.Render(right)

	padding := state.Width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 1 {
		return logo + " " + right
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderList draws the visible items next to the scrollbar track
func (r *Renderer) renderList(state ViewState) []string {
	listWidth := state.Width - state.TrackWidth
	if listWidth < 1 {
		listWidth = 1
	}

	rows := make([]string, 0, state.ListHeight)
	for _, item := range state.Items {
		block := r.renderItem(item, listWidth)
		if item.Skip > 0 && item.Skip < len(block) {
			block = block[item.Skip:]
		}
		for _, line := range block {
			if len(rows) == state.ListHeight {
				break
			}
			rows = append(rows, line)
		}
	}

	blank := strings.Repeat(" ", listWidth)
	for len(rows) < state.ListHeight {
		rows = append(rows, blank)
	}

	for i := range rows {
		rows[i] += r.renderTrackCell(state, i)
	}
	return rows
}

// renderItem draws one framed item, exactly item.Rows lines of listWidth cells
func (r *Renderer) renderItem(item ListItem, width int) []string {
	if item.Rows >= 3 && width >= 3 {
		box := r.styles.Item.
			Width(width - 2).
			Height(item.Rows - 2).
			Render(item.Label)
		return fit(strings.Split(box, "\n"), item.Rows, width)
	}

	lines := make([]string, 0, item.Rows)
	for i := 0; i < item.Rows; i++ {
		if i == item.Rows/2 {
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, item.Label))
			continue
		}
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}

func (r *Renderer) renderTrackCell(state ViewState, row int) string {
	if state.TrackWidth <= 0 {
		return ""
	}
	if !state.ScrollbarVisible {
		return strings.Repeat(" ", state.TrackWidth)
	}
	if row >= state.ThumbStart && row < state.ThumbEnd {
		style := r.styles.Thumb
		if state.ThumbActive {
			style = r.styles.ThumbActive
		}
		return style.Render(strings.Repeat("█", state.TrackWidth))
	}
	return r.styles.Track.Render(strings.Repeat("│", state.TrackWidth))
}

func (r *Renderer) renderButton(label string, width int, pressed bool) []string {
	style := r.styles.Button
	if pressed {
		style = r.styles.ButtonPressed
	}
	if width < 3 {
		return fit([]string{label}, ButtonRows, width)
	}
	box := style.Width(width - 2).Height(ButtonRows - 2).Render(label)
	return fit(strings.Split(box, "\n"), ButtonRows, width)
}

// fit pads or cuts lines to exactly n entries; padding lines are width blanks
func fit(lines []string, n, width int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}

// ItemLabel is the text shown in item i, counting from zero
func ItemLabel(i int) string {
	return strconv.Itoa(i + 1)
}
