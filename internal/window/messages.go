package window

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/gridos/internal/gateway"
	"github.com/kmacinski/gridos/internal/kernel"
)

// CommandResultMsg carries a terminal answer back to the window that asked
type CommandResultMsg struct {
	WindowID string
	Command  string
	Response gateway.Response
}

// ChatResultMsg carries an assistant reply back to the window that asked
type ChatResultMsg struct {
	WindowID string
	Response gateway.Response
}

// SearchResultMsg carries a grid search answer
type SearchResultMsg struct {
	Query    string
	Response gateway.Response
}

// LogMsg asks the desktop to record a kernel log entry
type LogMsg struct {
	Level   kernel.Level
	Message string
}

func logCmd(level kernel.Level, message string) tea.Cmd {
	return func() tea.Msg {
		return LogMsg{Level: level, Message: message}
	}
}

// ask runs call, turning a panic into the fallback answer so a result always arrives
func ask(logger *slog.Logger, fallback string, call func() gateway.Response) (resp gateway.Response) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Gateway call panicked", "panic", r)
			resp = gateway.Response{Text: fallback, Sources: []gateway.Source{}}
		}
	}()
	return call()
}
