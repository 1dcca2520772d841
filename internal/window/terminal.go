package window

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/gridos/internal/gateway"
	"github.com/kmacinski/gridos/internal/kernel"
	"github.com/kmacinski/gridos/internal/keys"
	"github.com/kmacinski/gridos/internal/log"
	"github.com/kmacinski/gridos/internal/ui"
)

const (
	// Prompt precedes every command, in the input line and in the transcript
	Prompt = "root@grid-os:~$ "

	crashText = "Critical system error in terminal execution."
)

var terminalBanner = []string{
	"Grid-OS [Version 4.0.2-Stable]",
	"Grounding-Engine: Online | Neural-Link: Active",
	"Type 'clear' to wipe the screen, or ask a real-world question.",
}

type termEntry struct {
	input bool
	text  string
}

// Terminal sends commands to the gateway and keeps the transcript
type Terminal struct {
	Base
	gw         gateway.Service
	sysContext string
	input      textinput.Model
	spinner    spinner.Model
	entries    []termEntry
	loading    bool
	scroll     int
	height     int
	logger     *slog.Logger
}

// NewTerminal creates a terminal bound to window id
func NewTerminal(id, title string, gw gateway.Service, sysContext string, styles ui.Styles) *Terminal {
	t := &Terminal{
		Base:       NewBase(id, title, styles),
		gw:         gw,
		sysContext: sysContext,
		input:      newInput(Prompt, "Command..."),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		logger:     log.NewModuleLogger("window", "terminal"),
	}
	t.SetStyles(styles)
	return t
}

// SetStyles swaps the palette
func (t *Terminal) SetStyles(styles ui.Styles) {
	t.Base.SetStyles(styles)
	t.input.PromptStyle = styles.Prompt
	t.input.TextStyle = styles.Output
	t.spinner.Style = styles.Busy
}

// Loading reports whether a command is in flight
func (t *Terminal) Loading() bool {
	return t.loading
}

// Yank returns the last output entry
func (t *Terminal) Yank() (string, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if !t.entries[i].input {
			return t.entries[i].text, true
		}
	}
	return "", false
}

// Update handles input
func (t *Terminal) Update(msg tea.Msg) (Window, tea.Cmd) {
	switch msg := msg.(type) {
	case CommandResultMsg:
		if msg.WindowID != t.name {
			return t, nil
		}
		return t, t.complete(msg)

	case spinner.TickMsg:
		if !t.loading {
			return t, nil
		}
		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)
		return t, cmd

	case tea.KeyMsg:
		if !t.focused {
			return t, nil
		}
		return t, t.handleKey(msg)
	}

	return t, nil
}

func (t *Terminal) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.DefaultKeyMap.Enter):
		return t.submit()
	case key.Matches(msg, keys.DefaultKeyMap.PageUp):
		t.scroll += t.page()
		return nil
	case key.Matches(msg, keys.DefaultKeyMap.PageDown):
		t.scroll = max(0, t.scroll-t.page())
		return nil
	}

	if t.loading {
		return nil
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *Terminal) submit() tea.Cmd {
	command := strings.TrimSpace(t.input.Value())
	if command == "" || t.loading {
		return nil
	}
	t.input.SetValue("")
	t.scroll = 0

	if command == "clear" {
		t.entries = nil
		return nil
	}

	t.entries = append(t.entries, termEntry{input: true, text: Prompt + command})
	t.loading = true
	t.input.Blur()

	id, gw, sysContext, logger := t.name, t.gw, t.sysContext, t.logger
	return tea.Batch(t.spinner.Tick, func() tea.Msg {
		resp := ask(logger, crashText, func() gateway.Response {
			return gw.ExecuteCommand(context.Background(), command, sysContext)
		})
		return CommandResultMsg{WindowID: id, Command: command, Response: resp}
	})
}

func (t *Terminal) complete(msg CommandResultMsg) tea.Cmd {
	t.entries = append(t.entries, termEntry{text: msg.Response.Text + sourcesSuffix(msg.Response.Sources)})
	t.loading = false
	t.scroll = 0
	t.input.Focus()
	return logCmd(kernel.LevelInfo, "Executed command: "+msg.Command)
}

func (t *Terminal) page() int {
	return max(1, t.height-6)
}

// View renders the terminal
func (t *Terminal) View(width, height int) string {
	t.height = height
	contentWidth := width - 2
	bodyHeight := height - 3 // borders and title row
	if contentWidth < 1 || bodyHeight < 1 {
		return t.Frame(nil, width, height)
	}

	var lines []string
	for _, b := range terminalBanner {
		lines = appendStyled(lines, t.styles.Banner, b, contentWidth)
	}
	lines = append(lines, t.styles.Muted.Render(strings.Repeat("─", contentWidth)))
	for _, e := range t.entries {
		style := t.styles.Output
		if e.input {
			style = t.styles.Input
		}
		lines = appendStyled(lines, style, e.text, contentWidth)
	}
	if t.loading {
		lines = append(lines, t.spinner.View()+" "+t.styles.Busy.Render("Querying AI Core & Global Search Grid..."))
	}

	transcriptHeight := bodyHeight - 2 // separator and input line
	t.scroll = clampScroll(t.scroll, len(lines), transcriptHeight)
	body := tail(lines, transcriptHeight, t.scroll)
	for len(body) < transcriptHeight {
		body = append(body, "")
	}

	t.input.Width = max(1, contentWidth-ansi.StringWidth(Prompt)-1)
	body = append(body, t.styles.Muted.Render(strings.Repeat("─", contentWidth)), t.input.View())

	return t.Frame(body, width, height)
}

// Hostnames returns the distinct hostnames of sources in first-seen order
func Hostnames(sources []gateway.Source) []string {
	seen := make(map[string]bool)
	var hosts []string
	for _, s := range sources {
		u, err := url.Parse(s.URI)
		if err != nil || u.Hostname() == "" {
			continue
		}
		host := u.Hostname()
		if seen[host] {
			continue
		}
		seen[host] = true
		hosts = append(hosts, host)
	}
	return hosts
}

func sourcesSuffix(sources []gateway.Source) string {
	hosts := Hostnames(sources)
	if len(hosts) == 0 {
		return ""
	}
	return "\n\n[ SOURCES: " + strings.Join(hosts, ", ") + " ]"
}

func newInput(prompt, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.Focus()
	return ti
}
