package ui

import (
	"math"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"holdscroll/internal/config"
	"holdscroll/internal/domain"
	"holdscroll/internal/eventbus"
	"holdscroll/internal/logging"
	"holdscroll/internal/ui/logic"
	"holdscroll/internal/ui/services/hold"
	"holdscroll/internal/ui/services/scroll"
	"holdscroll/internal/ui/services/visibility"
	"holdscroll/internal/ui/views"
)

// E2EEnv enables the readiness marker used by the PTY tests
const E2EEnv = "HOLDSCROLL_E2E_TEST"

// Option configures a Model
type Option func(*Model)

// WithConfigService persists settings changed from the UI on quit
func WithConfigService(svc config.ConfigService) Option {
	return func(m *Model) {
		m.configSvc = svc
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithClock overrides the animation clock
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	logger    zerolog.Logger
	now       func() time.Time

	controller *scroll.Controller
	animator   *scroll.Animator
	repeater   *hold.Repeater
	autoHide   *visibility.AutoHide

	renderer *views.Renderer
	keys     keyMap
	help     help.Model
	helpText *HelpRenderer

	width   int
	height  int
	layout  layout
	pointer pointerState
	thumb   domain.ThumbGeometry

	framing     bool // a frame tick is pending
	dirty       bool // settings changed since load
	inPagerMode bool // tracks if we're currently in pager mode
	e2e         bool

	unsubscribe []func()

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts ...Option) *Model {
	m := &Model{
		bus:      bus,
		config:   cfg,
		logger:   zerolog.Nop(),
		now:      time.Now,
		renderer: views.NewRenderer(),
		keys:     newKeyMap(),
		help:     help.New(),
		e2e:      os.Getenv(E2EEnv) == "1",
	}
	for _, opt := range opts {
		opt(m)
	}
	m.helpText = NewHelpRenderer(m.keys)

	m.controller = scroll.NewController(bus,
		scroll.WithStopAtEnd(cfg.List.StopAtEnd),
		scroll.WithLogger(logging.Component(m.logger, "scroll")),
	)
	m.controller.SetItems(uniformHeights(cfg.List.ItemCount, cfg.List.ItemHeight))

	easing, ok := scroll.EasingByName(cfg.Animation.Easing)
	if !ok {
		easing = scroll.EaseOutCubic
	}
	m.animator = scroll.NewAnimator(m.controller,
		scroll.WithDuration(cfg.AnimationDuration()),
		scroll.WithEasing(easing),
		scroll.WithClock(m.now),
	)

	mode, ok := hold.ParseMode(cfg.Repeat.Mode)
	if !ok {
		mode = hold.ModeConstant
	}
	m.repeater = hold.NewRepeater(m.animator, bus,
		hold.WithInterval(cfg.RepeatInterval()),
		hold.WithMode(mode),
		hold.WithMaxStep(cfg.Repeat.MaxStep),
	)

	m.autoHide = visibility.New(bus,
		visibility.WithDelay(cfg.HideDelay()),
		visibility.WithAlwaysShow(cfg.Scrollbar.AlwaysShow),
	)

	// The thumb follows every position change before the next frame is drawn
	if bus != nil {
		m.unsubscribe = append(m.unsubscribe,
			bus.Subscribe(eventbus.EventPositionChanged, func(eventbus.DomainEvent) {
				m.refreshThumb()
			}),
		)
	}

	m.layout = computeLayout(0, 0, cfg.Scrollbar.Width)
	return m
}

func uniformHeights(n, height int) []int {
	if n < 0 {
		n = 0
	}
	heights := make([]int, n)
	for i := range heights {
		heights[i] = height
	}
	return heights
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.autoHide.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case frameMsg:
		if m.animator.Tick(time.Time(msg)) {
			cmds = append(cmds, frame())
		} else {
			m.framing = false
		}

	case hold.TickMsg:
		cmds = append(cmds, m.repeater.Update(msg))

	case visibility.HideMsg:
		if m.autoHide.Update(msg) {
			m.logger.Debug().Msg("scrollbar hidden")
		}

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.logger.Error().Err(msg.err).Msg("help pager failed")
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case quitMsg:
		if msg.saveConfig {
			m.saveSettings()
		}
		m.close()
		return m, tea.Quit
	}

	cmds = append(cmds, m.syncBusy(), m.ensureFrameLoop())
	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.layout = computeLayout(width, height, m.config.Scrollbar.Width)
	m.controller.SetViewportHeight(m.layout.listHeight)
	m.refreshThumb()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	var moved bool

	switch {
	case key.Matches(msg, m.keys.Quit):
		return func() tea.Msg { return quitMsg{saveConfig: m.dirty} }

	case key.Matches(msg, m.keys.Up):
		moved = m.animator.MoveBy(-1)

	case key.Matches(msg, m.keys.Down):
		moved = m.animator.MoveBy(1)

	case key.Matches(msg, m.keys.PageUp):
		moved = m.animator.MoveBy(-m.pageStep())

	case key.Matches(msg, m.keys.PageDown):
		moved = m.animator.MoveBy(m.pageStep())

	case key.Matches(msg, m.keys.Top):
		moved = m.animator.MoveTo(0)

	case key.Matches(msg, m.keys.Bottom):
		moved = m.animator.MoveTo(m.controller.ItemCount() - 1)

	case key.Matches(msg, m.keys.AlwaysShow):
		m.dirty = true
		return m.autoHide.SetAlwaysShow(!m.autoHide.AlwaysShow())

	case key.Matches(msg, m.keys.Help):
		return m.fetchHelpPager(m.helpText.RenderHelpContentPlain())
	}

	if moved {
		return m.autoHide.Touch()
	}
	return nil
}

// pageStep is one viewport of fully visible items
func (m *Model) pageStep() int {
	visible := m.controller.Metrics().VisibleItems - 1
	if visible < 1 {
		return 1
	}
	return visible
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.wheel(-1)
		case tea.MouseButtonWheelDown:
			return m.wheel(1)
		case tea.MouseButtonLeft:
			return m.press(msg.X, msg.Y)
		}

	case tea.MouseActionMotion:
		m.motion(msg.X, msg.Y)

	case tea.MouseActionRelease:
		m.release()
	}
	return nil
}

func (m *Model) wheel(sign int) tea.Cmd {
	m.animator.Cancel()
	if !m.controller.MoveByPixels(float64(sign * m.config.List.WheelStep)) {
		return nil
	}
	return m.autoHide.Touch()
}

// press starts a pointer interaction; a second press without a release
// ends the previous one first
func (m *Model) press(x, y int) tea.Cmd {
	if m.pointer.pressed() {
		m.release()
	}

	switch r := m.layout.regionAt(x, y); r {
	case regionUp, regionDown:
		dir := buttonDirection(r)
		m.pointer = pointerState{mode: pointerHoldingButton, dir: dir}
		m.logger.Debug().Stringer("direction", dir).Msg("button pressed")
		return m.repeater.Press(dir)

	case regionTrack:
		row := m.layout.trackRow(y)
		if logic.ThumbContains(m.thumb, row, m.layout.listHeight) {
			m.animator.Cancel()
			m.controller.BeginGesture()
			m.pointer = pointerState{mode: pointerDraggingThumb, lastRow: row}
			return nil
		}
		m.pointer = pointerState{mode: pointerTrackPressed}
		target := logic.TapToIndex(logic.TrackTap(row, m.layout.listHeight), m.controller.Metrics())
		m.animator.MoveTo(target)
	}
	return nil
}

func (m *Model) motion(x, y int) {
	switch m.pointer.mode {
	case pointerHoldingButton:
		// Leaving the held button counts as a release
		if buttonDirection(m.layout.regionAt(x, y)) != m.pointer.dir {
			m.release()
		}

	case pointerDraggingThumb:
		row := m.layout.trackRow(y)
		dy := row - m.pointer.lastRow
		if dy == 0 {
			return
		}
		m.pointer.lastRow = row
		m.controller.ScrollByItems(logic.DragToItems(float64(dy), m.controller.Metrics()))
	}
}

func (m *Model) release() {
	switch m.pointer.mode {
	case pointerHoldingButton:
		m.repeater.Release()
		m.animator.Cancel()
		m.logger.Debug().Int("repeats", m.repeater.RepeatCount()).Msg("button released")
	case pointerDraggingThumb:
		m.controller.EndGesture()
	}
	m.pointer = pointerState{}
}

// syncBusy keeps the scrollbar up while scrolling or pressed
func (m *Model) syncBusy() tea.Cmd {
	return m.autoHide.SetBusy(m.controller.ScrollInProgress() || m.pointer.pressed())
}

func (m *Model) ensureFrameLoop() tea.Cmd {
	if !m.animator.Active() || m.framing {
		return nil
	}
	m.framing = true
	return frame()
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) refreshThumb() {
	m.thumb = logic.Thumb(m.controller.Metrics(), m.controller.Position())
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil || m.helpOps == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) saveSettings() {
	if m.configSvc == nil {
		return
	}
	// Start from the file so command-line overrides are not written back
	cfg, err := m.configSvc.Load()
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to reload config before saving")
		return
	}
	cfg.Scrollbar.AlwaysShow = m.autoHide.AlwaysShow()
	m.config.Scrollbar.AlwaysShow = cfg.Scrollbar.AlwaysShow
	if err := m.configSvc.Save(cfg); err != nil {
		m.logger.Error().Err(err).Msg("failed to save config")
		return
	}
	m.dirty = false
	m.logger.Info().Str("path", m.configSvc.Path()).Msg("config saved")
}

func (m *Model) close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	start, end := logic.CellSpan(m.thumb, m.layout.listHeight)
	pos := m.controller.Position()
	first := 0
	if m.controller.ItemCount() > 0 {
		first = pos.Index + 1
	}

	state := views.ViewState{
		Width:            m.width,
		Height:           m.height,
		ListHeight:       m.layout.listHeight,
		TrackWidth:       m.layout.trackWidth,
		Items:            m.visibleItems(),
		ScrollbarVisible: m.autoHide.Visible() && m.thumb.Drawn(),
		ThumbStart:       start,
		ThumbEnd:         end,
		ThumbActive:      m.pointer.mode == pointerDraggingThumb,
		UpPressed:        m.pointer.mode == pointerHoldingButton && m.pointer.dir == domain.DirectionUp,
		DownPressed:      m.pointer.mode == pointerHoldingButton && m.pointer.dir == domain.DirectionDown,
		FirstVisible:     first,
		TotalItems:       m.controller.ItemCount(),
		AlwaysShow:       m.autoHide.AlwaysShow(),
		HelpLine:         m.help.View(m.keys),
		Ready:            m.e2e,
	}
	return m.renderer.Render(state)
}

// visibleItems lists the items intersecting the viewport, top to bottom
func (m *Model) visibleItems() []views.ListItem {
	pos := m.controller.Position()
	rows := m.layout.listHeight
	items := make([]views.ListItem, 0, m.controller.Metrics().VisibleItems)

	skip := int(math.Floor(pos.Offset))
	for i := pos.Index; i < m.controller.ItemCount() && rows > 0; i++ {
		h := m.controller.ItemHeight(i)
		items = append(items, views.ListItem{Label: views.ItemLabel(i), Rows: h, Skip: skip})
		rows -= h - skip
		skip = 0
	}
	return items
}
