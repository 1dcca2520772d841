package window

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/gridos/internal/gateway"
	"github.com/kmacinski/gridos/internal/kernel"
	"github.com/kmacinski/gridos/internal/keys"
	"github.com/kmacinski/gridos/internal/log"
	"github.com/kmacinski/gridos/internal/ui"
)

// Search is the top-bar grid search and its result overlay
type Search struct {
	styles  ui.Styles
	gw      gateway.Service
	input   textinput.Model
	spinner spinner.Model
	active  bool
	loading bool
	query   string
	result  *gateway.Response
	logger  *slog.Logger
}

// NewSearch creates the search bar
func NewSearch(gw gateway.Service, styles ui.Styles) *Search {
	ti := newInput("⌕ ", "Search the Grid...")
	ti.Blur()
	s := &Search{
		gw:      gw,
		input:   ti,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		logger:  log.NewModuleLogger("window", "search"),
	}
	s.SetStyles(styles)
	return s
}

// SetStyles swaps the palette
func (s *Search) SetStyles(styles ui.Styles) {
	s.styles = styles
	s.input.PromptStyle = styles.Muted
	s.input.TextStyle = styles.Output
	s.spinner.Style = styles.Busy
}

// Activate gives the search bar the keyboard
func (s *Search) Activate() tea.Cmd {
	s.active = true
	return s.input.Focus()
}

// Deactivate returns the keyboard to the windows
func (s *Search) Deactivate() {
	s.active = false
	s.input.Blur()
}

// Active reports whether the search bar has the keyboard
func (s *Search) Active() bool {
	return s.active
}

// Loading reports whether a search is in flight
func (s *Search) Loading() bool {
	return s.loading
}

// Result returns the result on display, if any
func (s *Search) Result() (gateway.Response, bool) {
	if s.result == nil {
		return gateway.Response{}, false
	}
	return *s.result, true
}

// Dismiss closes the result overlay
func (s *Search) Dismiss() {
	s.result = nil
}

// Yank returns the result text
func (s *Search) Yank() (string, bool) {
	if s.result == nil {
		return "", false
	}
	return s.result.Text, true
}

// Update handles keys while active, plus results and spinner ticks
func (s *Search) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SearchResultMsg:
		resp := msg.Response
		s.result = &resp
		s.loading = false
		return nil

	case spinner.TickMsg:
		if !s.loading {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if !s.active {
			return nil
		}
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			return s.submit()
		case key.Matches(msg, keys.DefaultKeyMap.Escape):
			s.Deactivate()
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	return nil
}

func (s *Search) submit() tea.Cmd {
	query := strings.TrimSpace(s.input.Value())
	if query == "" || s.loading {
		return nil
	}
	s.query = query
	s.loading = true
	s.Deactivate()

	gw, logger := s.gw, s.logger
	return tea.Batch(
		logCmd(kernel.LevelInfo, "Initiating Grid Search: "+query),
		s.spinner.Tick,
		func() tea.Msg {
			resp := ask(logger, gateway.FallbackSearch, func() gateway.Response {
				return gw.Search(context.Background(), query)
			})
			return SearchResultMsg{Query: query, Response: resp}
		},
	)
}

// BarView renders the search field for the top bar
func (s *Search) BarView(width int) string {
	s.input.Width = max(1, width-4)
	if s.loading {
		return s.spinner.View() + " " + s.styles.Busy.Render("searching "+s.query)
	}
	return s.input.View()
}

// ResultView renders the result overlay content
func (s *Search) ResultView(width, height int) string {
	contentWidth := width - 6 // border and padding
	contentHeight := height - 4
	if s.result == nil || contentWidth < 1 || contentHeight < 1 {
		return ""
	}

	lines := []string{s.styles.ModalTitle.Render("Grid Search Results"), ""}
	lines = appendStyled(lines, s.styles.Output, s.result.Text, contentWidth)

	if len(s.result.Sources) > 0 {
		lines = append(lines, "", s.styles.Muted.Render(strings.Repeat("─", contentWidth)))
		lines = append(lines, s.styles.Muted.Render("GROUNDING SOURCES"))
		for _, src := range s.result.Sources {
			lines = append(lines, s.styles.Source.Render(src.Title)+" "+s.styles.Muted.Render(src.URI))
		}
	}
	lines = append(lines, "", s.styles.Muted.Render("esc to close, ctrl+y to copy"))

	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}

	return s.styles.Modal.
		Width(contentWidth + 4).
		Render(strings.Join(lines, "\n"))
}
