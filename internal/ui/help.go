package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("holdscroll Help"))
	help.WriteString("\n")

	sections := []string{"Scrolling", "Other"}
	for i, group := range r.keys.FullHelp() {
		help.WriteString(sectionStyle.Render(sections[i]))
		help.WriteString("\n")
		writeBindings(&help, group, keyStyle, descStyle)
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	writeBindings(&help, []key.Binding{
		key.NewBinding(key.WithHelp("hold ↑/↓", "Scroll one item per tick until released")),
		key.NewBinding(key.WithHelp("drag thumb", "Scroll proportionally")),
		key.NewBinding(key.WithHelp("click track", "Jump to that part of the list")),
		key.NewBinding(key.WithHelp("wheel", "Scroll by rows")),
	}, keyStyle, descStyle)

	return strings.TrimRight(help.String(), "\n")
}

func writeBindings(b *strings.Builder, bindings []key.Binding, keyStyle, descStyle lipgloss.Style) {
	width := 0
	for _, kb := range bindings {
		if w := lipgloss.Width(kb.Help().Key); w > width {
			width = w
		}
	}
	for _, kb := range bindings {
		h := kb.Help()
		pad := strings.Repeat(" ", width-lipgloss.Width(h.Key)+2)
		b.WriteString(fmt.Sprintf("  %s%s%s\n", keyStyle.Render(h.Key), pad, descStyle.Render(h.Desc)))
	}
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
