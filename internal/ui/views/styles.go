package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Position      lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Item          lipgloss.Style
	Button        lipgloss.Style
	ButtonPressed lipgloss.Style
	Track         lipgloss.Style
	Thumb         lipgloss.Style
	ThumbActive   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Position: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Item: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Align(lipgloss.Center, lipgloss.Center),
		Button: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Bold(true).
			Align(lipgloss.Center, lipgloss.Center),
		ButtonPressed: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("226")).
			Foreground(lipgloss.Color("226")).
			Bold(true).
			Align(lipgloss.Center, lipgloss.Center),
		Track:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Thumb:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ThumbActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	}
}
