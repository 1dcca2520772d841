package window

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/gridos/internal/gateway"
	"github.com/kmacinski/gridos/internal/keys"
	"github.com/kmacinski/gridos/internal/log"
	"github.com/kmacinski/gridos/internal/ui"
)

// Greeting is the first message of every assistant conversation
const Greeting = "Neural link established. I am the Grid OS Assistant. How can I assist your operations today?"

const sourceTitleLimit = 20

type chatMessage struct {
	role    gateway.Role
	text    string
	sources []gateway.Source
}

// Assistant is a grounded chat with the gateway
type Assistant struct {
	Base
	gw       gateway.Service
	input    textinput.Model
	spinner  spinner.Model
	messages []chatMessage
	loading  bool
	scroll   int
	height   int
	logger   *slog.Logger
}

// NewAssistant creates an assistant bound to window id
func NewAssistant(id, title string, gw gateway.Service, styles ui.Styles) *Assistant {
	a := &Assistant{
		Base:     NewBase(id, title, styles),
		gw:       gw,
		input:    newInput("› ", "Query the OS Intelligence..."),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Points)),
		messages: []chatMessage{{role: gateway.RoleModel, text: Greeting}},
		logger:   log.NewModuleLogger("window", "assistant"),
	}
	a.SetStyles(styles)
	return a
}

// SetStyles swaps the palette
func (a *Assistant) SetStyles(styles ui.Styles) {
	a.Base.SetStyles(styles)
	a.input.PromptStyle = lipgloss.NewStyle().Foreground(styles.Colors.Assistant)
	a.input.TextStyle = styles.Output
	a.spinner.Style = styles.Busy
}

// Loading reports whether a reply is pending
func (a *Assistant) Loading() bool {
	return a.loading
}

// History returns the conversation as gateway turns, greeting included
func (a *Assistant) History() []gateway.Turn {
	turns := make([]gateway.Turn, 0, len(a.messages))
	for _, m := range a.messages {
		turns = append(turns, gateway.Turn{Role: m.role, Text: m.text})
	}
	return turns
}

// Yank returns the latest model reply
func (a *Assistant) Yank() (string, bool) {
	for i := len(a.messages) - 1; i >= 0; i-- {
		if a.messages[i].role == gateway.RoleModel {
			return a.messages[i].text, true
		}
	}
	return "", false
}

// Update handles input
func (a *Assistant) Update(msg tea.Msg) (Window, tea.Cmd) {
	switch msg := msg.(type) {
	case ChatResultMsg:
		if msg.WindowID != a.name {
			return a, nil
		}
		a.messages = append(a.messages, chatMessage{
			role:    gateway.RoleModel,
			text:    msg.Response.Text,
			sources: msg.Response.Sources,
		})
		a.loading = false
		a.scroll = 0
		a.input.Focus()
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if !a.focused {
			return a, nil
		}
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			return a, a.send()
		case key.Matches(msg, keys.DefaultKeyMap.PageUp):
			a.scroll += max(1, a.height-6)
			return a, nil
		case key.Matches(msg, keys.DefaultKeyMap.PageDown):
			a.scroll = max(0, a.scroll-max(1, a.height-6))
			return a, nil
		}
		if a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *Assistant) send() tea.Cmd {
	text := strings.TrimSpace(a.input.Value())
	if text == "" || a.loading {
		return nil
	}

	history := a.History()
	a.messages = append(a.messages, chatMessage{role: gateway.RoleUser, text: text})
	a.input.SetValue("")
	a.input.Blur()
	a.loading = true
	a.scroll = 0

	id, gw, logger := a.name, a.gw, a.logger
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		resp := ask(logger, gateway.FallbackChat, func() gateway.Response {
			return gw.Chat(context.Background(), text, history)
		})
		return ChatResultMsg{WindowID: id, Response: resp}
	})
}

// View renders the conversation
func (a *Assistant) View(width, height int) string {
	a.height = height
	contentWidth := width - 2
	bodyHeight := height - 3
	if contentWidth < 1 || bodyHeight < 1 {
		return a.Frame(nil, width, height)
	}

	bubbleWidth := max(1, contentWidth*9/10)
	userStyle := a.styles.UserBubble
	modelStyle := a.styles.ModelBubble

	var lines []string
	for i, m := range a.messages {
		if i > 0 {
			lines = append(lines, "")
		}
		if m.role == gateway.RoleUser {
			for _, l := range wrap(m.text, bubbleWidth) {
				l = strings.TrimRight(l, " ")
				lines = append(lines, lipgloss.PlaceHorizontal(contentWidth, lipgloss.Right, userStyle.Render(l)))
			}
			continue
		}
		lines = appendStyled(lines, modelStyle, m.text, bubbleWidth)
		if len(m.sources) > 0 {
			lines = append(lines, a.styles.Muted.Render("GROUNDING SOURCES"))
			for _, s := range m.sources {
				lines = append(lines, "  ↗ "+a.styles.Source.Render(SourceLabel(s.Title)))
			}
		}
	}
	if a.loading {
		lines = append(lines, "", a.spinner.View()+" "+a.styles.Busy.Render("Synchronizing with Search Grid..."))
	}

	transcriptHeight := bodyHeight - 2
	a.scroll = clampScroll(a.scroll, len(lines), transcriptHeight)
	body := tail(lines, transcriptHeight, a.scroll)
	for len(body) < transcriptHeight {
		body = append(body, "")
	}

	a.input.Width = max(1, contentWidth-4)
	body = append(body, a.styles.Muted.Render(strings.Repeat("─", contentWidth)), a.input.View())

	return a.Frame(body, width, height)
}

// SourceLabel shortens a source title for display
func SourceLabel(title string) string {
	r := []rune(title)
	if len(r) > sourceTitleLimit {
		return string(r[:sourceTitleLimit]) + "..."
	}
	return title
}
