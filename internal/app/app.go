package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/gridos/internal/config"
	"github.com/kmacinski/gridos/internal/gateway"
	"github.com/kmacinski/gridos/internal/kernel"
	"github.com/kmacinski/gridos/internal/keys"
	"github.com/kmacinski/gridos/internal/layout"
	"github.com/kmacinski/gridos/internal/log"
	"github.com/kmacinski/gridos/internal/metrics"
	"github.com/kmacinski/gridos/internal/ui"
	"github.com/kmacinski/gridos/internal/vfs"
	"github.com/kmacinski/gridos/internal/watcher"
	"github.com/kmacinski/gridos/internal/window"
	"github.com/kmacinski/gridos/internal/wm"
)

// App is the main application model
type App struct {
	state   *State
	cfg     config.Config
	wm      *wm.Manager
	layout  *layout.Manager
	styles  ui.Styles
	klog    *kernel.Log
	source  metrics.Source
	history *metrics.History

	// Content providers by window id
	windows   map[string]window.Window
	dashboard *window.Dashboard
	logs      *window.Logs
	search    *window.Search
	help      *window.Help

	// Dimensions
	width  int
	height int

	copy   func(string) error
	now    func() time.Time
	logger *slog.Logger

	// Config watcher
	watcher *watcher.ConfigWatcher
	program *tea.Program
}

// New creates a new application over the default window set
func New(cfg config.Config, gw gateway.Service, source metrics.Source, fs vfs.Lister) *App {
	styles := ui.NewStyles(ui.ColorsFrom(cfg.Colors))
	manager := wm.NewDefaultManager()

	a := &App{
		state:   NewState(cfg.Boot.Skip),
		cfg:     cfg,
		wm:      manager,
		layout:  layout.NewManager(breakpoint(cfg.Layout)),
		styles:  styles,
		klog:    kernel.NewLog(cfg.Layout.LogLimit),
		source:  source,
		history: metrics.NewHistory(cfg.Metrics.History),
		windows: make(map[string]window.Window),
		search:  window.NewSearch(gw, styles),
		help:    window.NewHelp(styles),
		copy:    clipboard.WriteAll,
		now:     time.Now,
		logger:  log.NewModuleLogger("app", "desktop"),
	}

	for _, w := range manager.Windows() {
		switch w.Kind {
		case wm.KindTerminal:
			a.windows[w.ID] = window.NewTerminal(w.ID, w.Title, gw, cfg.Gateway.Context, styles)
		case wm.KindDashboard:
			a.dashboard = window.NewDashboard(w.ID, w.Title, styles)
			a.windows[w.ID] = a.dashboard
		case wm.KindExplorer:
			a.windows[w.ID] = window.NewExplorer(w.ID, w.Title, fs, styles)
		case wm.KindAIChat:
			a.windows[w.ID] = window.NewAssistant(w.ID, w.Title, gw, styles)
		case wm.KindSystemLogs:
			a.logs = window.NewLogs(w.ID, w.Title, styles)
			a.windows[w.ID] = a.logs
		}
	}

	if !a.state.Booting {
		a.bootLogs()
	}
	a.syncFocus()

	return a
}

func breakpoint(c config.LayoutConfig) layout.Breakpoint {
	return layout.Breakpoint{MinWidth: c.MinFloatingWidth, MinHeight: c.MinFloatingHeight}
}

// SetProgram sets the tea.Program reference for sending messages from the watcher
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
}

// WatchConfig reloads path whenever it changes on disk
func (a *App) WatchConfig(path string) error {
	if path == "" {
		return nil
	}
	w, err := watcher.New(path, 300*time.Millisecond, func() {
		cfg, err := config.Load(path)
		if a.program != nil {
			a.program.Send(ConfigReloadedMsg{Config: cfg, Err: err})
		}
	})
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}
	a.watcher = w
	return nil
}

// Cleanup stops the watcher
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}

// Windows exposes the window manager
func (a *App) Windows() *wm.Manager {
	return a.wm
}

// Provider returns the content provider bound to window id
func (a *App) Provider(id string) (window.Window, bool) {
	w, ok := a.windows[id]
	return w, ok
}

// Log returns the kernel log
func (a *App) Log() *kernel.Log {
	return a.klog
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	if a.state.Booting {
		return a.bootTick()
	}
	return a.metricsTick()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout.Resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		a.state.Status = ""
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case BootTickMsg:
		if !a.state.Booting {
			return a, nil
		}
		if a.state.BootComplete() {
			a.bootLogs()
			return a, tea.Tick(a.cfg.Boot.Hold, func(time.Time) tea.Msg { return BootDoneMsg{} })
		}
		a.state.AdvanceBoot(a.cfg.Boot.Step)
		return a, a.bootTick()

	case BootDoneMsg:
		if !a.state.Booting {
			return a, nil
		}
		a.state.Booting = false
		return a, a.metricsTick()

	case MetricsTickMsg:
		sample := a.source.Next()
		a.history.Push(sample)
		a.state.Metrics = sample
		a.dashboard.SetMetrics(sample,
			a.history.Series(func(s metrics.Sample) float64 { return s.CPU }),
			a.history.Series(func(s metrics.Sample) float64 { return s.Memory }),
		)
		return a, a.metricsTick()

	case ConfigReloadedMsg:
		a.applyConfig(msg)
		return a, nil

	case window.LogMsg:
		a.addLog(msg.Level, msg.Message)
		return a, nil

	case window.SearchResultMsg:
		return a, a.search.Update(msg)

	case window.CommandResultMsg, window.ChatResultMsg:
		return a, a.broadcast(msg)

	case spinner.TickMsg:
		return a, tea.Batch(a.broadcast(msg), a.search.Update(msg))
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := keys.DefaultKeyMap

	// Always allow quit
	if key.Matches(msg, km.Quit) {
		return a, tea.Quit
	}
	if a.state.Booting {
		return a, nil
	}

	// Handle modal first
	if a.state.ActiveModal != "" {
		if key.Matches(msg, km.Help) || key.Matches(msg, km.Escape) {
			a.state.CloseModal()
		}
		return a, nil
	}

	if _, ok := a.search.Result(); ok {
		switch {
		case key.Matches(msg, km.Escape):
			a.search.Dismiss()
		case key.Matches(msg, km.Yank):
			a.yank(a.search)
		}
		return a, nil
	}

	if a.search.Active() {
		return a, a.search.Update(msg)
	}

	// Global keybindings
	switch {
	case key.Matches(msg, km.Help):
		a.state.ToggleModal(ModalHelp)
		return a, nil

	case key.Matches(msg, km.Search):
		return a, a.search.Activate()

	case key.Matches(msg, km.Tab):
		a.wm.CycleFocus(false)

	case key.Matches(msg, km.ShiftTab):
		a.wm.CycleFocus(true)

	case key.Matches(msg, km.Minimize):
		if w, ok := a.wm.Focused(); ok {
			a.wm.ToggleFocusOrMinimize(w.ID)
		}

	case key.Matches(msg, km.Close):
		if w, ok := a.wm.Focused(); ok {
			a.wm.Close(w.ID)
		}

	case key.Matches(msg, km.OpenExplorer):
		a.wm.Open(wm.KindExplorer)
	case key.Matches(msg, km.OpenDashboard):
		a.wm.Open(wm.KindDashboard)
	case key.Matches(msg, km.OpenTerminal):
		a.wm.Open(wm.KindTerminal)
	case key.Matches(msg, km.OpenAssistant):
		a.wm.Open(wm.KindAIChat)
	case key.Matches(msg, km.OpenLogs):
		a.wm.Open(wm.KindSystemLogs)

	case key.Matches(msg, km.Yank):
		if w, ok := a.focusedProvider(); ok {
			if y, ok := w.(window.Yanker); ok {
				a.yank(y)
			}
		}
		return a, nil

	default:
		for i, b := range km.Taskbar {
			if key.Matches(msg, b) {
				if ws := a.wm.Windows(); i < len(ws) {
					a.wm.Launch(ws[i].ID)
					a.syncFocus()
				}
				return a, nil
			}
		}
		// Delegate to focused window
		return a.delegateToFocused(msg)
	}

	a.syncFocus()
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || a.state.Booting {
		return a, nil
	}

	// Overlays swallow the click
	if a.state.ActiveModal != "" {
		a.state.CloseModal()
		return a, nil
	}
	if _, ok := a.search.Result(); ok {
		a.search.Dismiss()
		return a, nil
	}

	switch msg.Y {
	case 0:
		_, spans := a.renderTopBar()
		if id, ok := layout.HitSpan(spans, msg.X); ok {
			if kind, ok := wm.ParseKind(id); ok {
				a.wm.Open(kind)
			}
		}

	case a.height - 1:
		_, spans := a.renderTaskbar()
		if id, ok := layout.HitSpan(spans, msg.X); ok {
			a.wm.Launch(id)
		}

	default:
		placed := a.layout.Arrange(a.wm.Visible(), a.wm.Active())
		id, region := layout.HitTest(placed, msg.X, msg.Y)
		switch region {
		case layout.RegionMinimize:
			a.wm.ToggleFocusOrMinimize(id)
		case layout.RegionClose:
			a.wm.Close(id)
		case layout.RegionBody, layout.RegionTitle:
			a.wm.Focus(id)
		}
	}

	a.syncFocus()
	return a, nil
}

func (a *App) delegateToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	w, ok := a.focusedProvider()
	if !ok {
		return a, nil
	}
	_, cmd := w.Update(msg)
	return a, cmd
}

func (a *App) focusedProvider() (window.Window, bool) {
	focused, ok := a.wm.Focused()
	if !ok {
		return nil, false
	}
	w, ok := a.windows[focused.ID]
	return w, ok
}

// broadcast hands msg to every provider; each one keeps only what is addressed to it
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, w := range a.windows {
		if _, cmd := w.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// syncFocus mirrors the window manager's focus onto the providers
func (a *App) syncFocus() {
	for id, w := range a.windows {
		w.SetFocus(a.wm.IsFocused(id))
	}
}

func (a *App) yank(y window.Yanker) {
	text, ok := y.Yank()
	if !ok {
		return
	}
	if err := a.copy(text); err != nil {
		a.logger.Warn("Clipboard write failed", "error", err)
		a.state.Status = "Clipboard unavailable"
		return
	}
	a.state.Status = fmt.Sprintf("Copied %d chars", len([]rune(text)))
}

func (a *App) addLog(level kernel.Level, message string) {
	a.klog.Add(level, message)
	a.logs.SetEntries(a.klog.Entries())
	a.logger.Debug("Kernel log", "level", level, "message", message)
}

func (a *App) bootLogs() {
	a.addLog(kernel.LevelSystem, "System boot sequence complete.")
	a.addLog(kernel.LevelSystem, "All subsystems initialized.")
}

func (a *App) applyConfig(msg ConfigReloadedMsg) {
	if msg.Err != nil {
		a.logger.Warn("Config reload failed", "error", msg.Err)
		a.addLog(kernel.LevelWarn, "Configuration reload failed: "+msg.Err.Error())
		return
	}

	a.cfg.Colors = msg.Config.Colors
	a.cfg.Layout.MinFloatingWidth = msg.Config.Layout.MinFloatingWidth
	a.cfg.Layout.MinFloatingHeight = msg.Config.Layout.MinFloatingHeight

	a.styles = ui.NewStyles(ui.ColorsFrom(a.cfg.Colors))
	for _, w := range a.windows {
		w.SetStyles(a.styles)
	}
	a.search.SetStyles(a.styles)
	a.help.SetStyles(a.styles)
	a.layout.SetBreakpoint(breakpoint(a.cfg.Layout))

	a.addLog(kernel.LevelSystem, "Configuration reloaded.")
}

// Commands

func (a *App) bootTick() tea.Cmd {
	return tea.Tick(a.cfg.Boot.Tick, func(time.Time) tea.Msg { return BootTickMsg{} })
}

func (a *App) metricsTick() tea.Cmd {
	return tea.Tick(a.cfg.Metrics.Interval, func(time.Time) tea.Msg { return MetricsTickMsg{} })
}

// View renders the application
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.state.Booting {
		return a.renderBoot()
	}

	top, _ := a.renderTopBar()
	bottom, _ := a.renderTaskbar()

	placed := a.layout.Arrange(a.wm.Visible(), a.wm.Active())
	for i := range placed {
		if w, ok := a.windows[placed[i].ID]; ok {
			placed[i].Content = w.View(placed[i].Frame.Width, placed[i].Frame.Height)
		}
	}

	overlay := ""
	if a.state.ActiveModal == ModalHelp {
		overlay = a.help.View(min(64, a.width-4), a.height-4)
	} else if _, ok := a.search.Result(); ok {
		overlay = a.search.ResultView(min(96, a.width-4), a.height-4)
	}

	return a.layout.Compose(top, placed, bottom, overlay)
}

func (a *App) renderTopBar() (string, []layout.Span) {
	s := a.styles
	brand := s.Brand.Render(" ▣ Grid OS ") + s.TopBar.Render("4.0 │")

	labels := map[wm.Kind]string{
		wm.KindExplorer:   "Files",
		wm.KindDashboard:  "Monitor",
		wm.KindTerminal:   "Terminal",
		wm.KindAIChat:     "Assistant",
		wm.KindSystemLogs: "Logs",
	}
	var buttons []layout.Button
	for _, kind := range wm.Kinds() {
		style := s.TopBar
		if kind == wm.KindAIChat {
			style = s.TopBar.Foreground(s.Colors.Accent)
		}
		buttons = append(buttons, layout.Button{ID: kind.String(), Label: labels[kind], Style: style})
	}

	dot := s.Accent.Render("●")
	if a.state.Metrics.CPU > 80 {
		dot = s.Error.Render("●")
	}
	stats := fmt.Sprintf(" CPU: %.0f%%  MEM: %.0f%%  %s ", a.state.Metrics.CPU, a.state.Metrics.Memory, a.now().Format("15:04"))
	right := a.search.BarView(28) + "  " + dot + s.TopBar.Render(stats)

	return layout.RenderBar(a.width, s.TopBar, brand, buttons, right)
}

func (a *App) renderTaskbar() (string, []layout.Span) {
	s := a.styles

	var buttons []layout.Button
	for _, w := range a.wm.Windows() {
		label := strings.Fields(w.Title)
		name := w.Title
		if len(label) > 0 {
			name = label[0]
		}

		style := s.TaskbarItem
		marker := " "
		if w.IsOpen {
			marker = s.TaskbarOpen.Render("•")
		}
		if a.wm.IsFocused(w.ID) {
			style = s.TaskbarActive
		}
		buttons = append(buttons, layout.Button{ID: w.ID, Label: marker + name, Style: style})
	}

	right := s.Taskbar.Render(a.layout.Mode().String() + " │ F1 help ")
	if a.state.Status != "" {
		right = s.Accent.Render(a.state.Status) + " " + right
	}

	return layout.RenderBar(a.width, s.Taskbar, " ", buttons, right)
}

func (a *App) renderBoot() string {
	s := a.styles
	width := min(60, a.width-4)

	bar := progress.New(progress.WithSolidFill(string(s.Colors.Accent)), progress.WithoutPercentage())
	bar.Width = max(1, width)

	header := s.Accent.Render("[ INITIALIZING GRID OS ]")
	pct := s.Accent.Render(fmt.Sprintf("%d%%", a.state.BootProgress))
	gap := max(1, width-lipgloss.Width(header)-lipgloss.Width(pct))

	content := lipgloss.JoinVertical(lipgloss.Center,
		header+strings.Repeat(" ", gap)+pct,
		bar.ViewAs(float64(a.state.BootProgress)/100),
		"",
		s.Muted.Render("ESTABLISHING QUANTUM LINK • SECURING FILE SYSTEMS • LOADING AI KERNELS"),
	)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}
