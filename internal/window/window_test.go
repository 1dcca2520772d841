package window

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/gridos/internal/gateway"
	"github.com/kmacinski/gridos/internal/kernel"
	"github.com/kmacinski/gridos/internal/metrics"
	"github.com/kmacinski/gridos/internal/ui"
	"github.com/kmacinski/gridos/internal/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	mu       sync.Mutex
	resp     gateway.Response
	panics   bool
	commands []string
	contexts []string
	messages []string
	history  [][]gateway.Turn
	queries  []string
}

func (f *fakeGateway) ExecuteCommand(_ context.Context, command, systemContext string) gateway.Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panics {
		panic("boom")
	}
	f.commands = append(f.commands, command)
	f.contexts = append(f.contexts, systemContext)
	return f.resp
}

func (f *fakeGateway) Chat(_ context.Context, message string, history []gateway.Turn) gateway.Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panics {
		panic("boom")
	}
	f.messages = append(f.messages, message)
	f.history = append(f.history, history)
	return f.resp
}

func (f *fakeGateway) Search(_ context.Context, query string) gateway.Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panics {
		panic("boom")
	}
	f.queries = append(f.queries, query)
	return f.resp
}

// collect runs cmd and every command it batches, returning the produced messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func typeText(w Window, text string) {
	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func enter(w Window) tea.Cmd {
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestTerminal_CommandRoundTrip(t *testing.T) {
	gw := &fakeGateway{resp: gateway.Response{
		Text: "up 3 days",
		Sources: []gateway.Source{
			{Title: "a", URI: "https://news.example/x"},
			{Title: "b", URI: "https://news.example/y"},
			{Title: "c", URI: "https://wiki.example/z"},
		},
	}}
	term := NewTerminal("term-1", "Kernel Terminal", gw, "root ctx", ui.DefaultStyles)
	term.SetFocus(true)

	typeText(term, "  uptime ")
	msgs := collect(enter(term))

	assert.True(t, term.Loading())
	require.Len(t, term.entries, 1)
	assert.Equal(t, "root@grid-os:~$ uptime", term.entries[0].text)

	result, ok := find[CommandResultMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, "term-1", result.WindowID)
	assert.Equal(t, []string{"uptime"}, gw.commands)
	assert.Equal(t, []string{"root ctx"}, gw.contexts)

	_, cmd := term.Update(result)

	assert.False(t, term.Loading())
	require.Len(t, term.entries, 2)
	assert.Equal(t, "up 3 days\n\n[ SOURCES: news.example, wiki.example ]", term.entries[1].text)

	logMsg, ok := find[LogMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, kernel.LevelInfo, logMsg.Level)
	assert.Equal(t, "Executed command: uptime", logMsg.Message)
}

func TestTerminal_SubmitDisabledWhileLoading(t *testing.T) {
	gw := &fakeGateway{resp: gateway.Response{Text: "ok"}}
	term := NewTerminal("term-1", "Kernel Terminal", gw, "", ui.DefaultStyles)
	term.SetFocus(true)

	typeText(term, "ls")
	require.NotNil(t, enter(term))

	typeText(term, "pwd")
	assert.Nil(t, enter(term))
	assert.Len(t, term.entries, 1)
}

func TestTerminal_IgnoresOtherWindowsResults(t *testing.T) {
	term := NewTerminal("term-1", "Kernel Terminal", &fakeGateway{}, "", ui.DefaultStyles)

	term.Update(CommandResultMsg{WindowID: "term-2", Response: gateway.Response{Text: "x"}})

	assert.Empty(t, term.entries)
}

func TestTerminal_Clear(t *testing.T) {
	gw := &fakeGateway{resp: gateway.Response{Text: "ok"}}
	term := NewTerminal("term-1", "Kernel Terminal", gw, "", ui.DefaultStyles)
	term.SetFocus(true)
	term.entries = []termEntry{{input: true, text: "x"}, {text: "y"}}

	typeText(term, "clear")
	cmd := enter(term)

	assert.Nil(t, cmd)
	assert.Empty(t, term.entries)
	assert.Empty(t, gw.commands)
}

func TestTerminal_PanicBecomesCrashText(t *testing.T) {
	term := NewTerminal("term-1", "Kernel Terminal", &fakeGateway{panics: true}, "", ui.DefaultStyles)
	term.SetFocus(true)

	typeText(term, "ls")
	result, ok := find[CommandResultMsg](collect(enter(term)))
	require.True(t, ok)
	term.Update(result)

	assert.False(t, term.Loading())
	assert.Equal(t, crashText, term.entries[1].text)
}

func TestTerminal_UnfocusedIgnoresKeys(t *testing.T) {
	term := NewTerminal("term-1", "Kernel Terminal", &fakeGateway{}, "", ui.DefaultStyles)

	typeText(term, "ls")

	assert.Empty(t, term.input.Value())
}

func TestTerminal_View(t *testing.T) {
	term := NewTerminal("term-1", "Kernel Terminal", &fakeGateway{}, "", ui.DefaultStyles)
	term.SetFocus(true)

	view := term.View(60, 20)

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 20)
	assert.Contains(t, view, "Kernel Terminal")
	assert.Contains(t, view, ui.CloseButton)
	assert.Contains(t, view, "root@grid-os:~$")
}

func TestHostnames(t *testing.T) {
	hosts := Hostnames([]gateway.Source{
		{URI: "https://b.example/1"},
		{URI: "::bad"},
		{URI: "https://a.example/2"},
		{URI: "https://b.example/3"},
	})

	assert.Equal(t, []string{"b.example", "a.example"}, hosts)
	assert.Empty(t, sourcesSuffix(nil))
}

func TestAssistant_SendsPriorTranscriptAsHistory(t *testing.T) {
	gw := &fakeGateway{resp: gateway.Response{Text: "hello", Sources: []gateway.Source{}}}
	a := NewAssistant("assistant-1", "Neural Assistant", gw, ui.DefaultStyles)
	a.SetFocus(true)

	typeText(a, "hi there")
	result, ok := find[ChatResultMsg](collect(enter(a)))
	require.True(t, ok)
	assert.True(t, a.Loading())

	require.Len(t, gw.history, 1)
	assert.Equal(t, []gateway.Turn{{Role: gateway.RoleModel, Text: Greeting}}, gw.history[0])
	assert.Equal(t, []string{"hi there"}, gw.messages)

	a.Update(result)
	assert.False(t, a.Loading())

	typeText(a, "again")
	collect(enter(a))

	require.Len(t, gw.history, 2)
	assert.Len(t, gw.history[1], 3)
	assert.Equal(t, gateway.RoleUser, gw.history[1][1].Role)
	assert.Equal(t, "hi there", gw.history[1][1].Text)

	text, ok := a.Yank()
	assert.True(t, ok)
	assert.Equal(t, "hello", text)
}

func TestAssistant_PanicBecomesFallback(t *testing.T) {
	a := NewAssistant("assistant-1", "Neural Assistant", &fakeGateway{panics: true}, ui.DefaultStyles)
	a.SetFocus(true)

	typeText(a, "hi")
	result, ok := find[ChatResultMsg](collect(enter(a)))
	require.True(t, ok)

	assert.Equal(t, gateway.FallbackChat, result.Response.Text)
	assert.NotNil(t, result.Response.Sources)
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "short", SourceLabel("short"))
	assert.Equal(t, "exactly twenty chars", SourceLabel("exactly twenty chars"))
	assert.Equal(t, "a much longer source...", SourceLabel("a much longer source title"))
}

func TestDashboard_View(t *testing.T) {
	d := NewDashboard("dash-1", "System Analytics", ui.DefaultStyles)
	d.SetMetrics(metrics.Sample{CPU: 42, Memory: 50, Disk: 30, Network: 7.5}, []float64{10, 90}, []float64{50, 50})

	view := d.View(70, 18)

	assert.Contains(t, view, "42%")
	assert.Contains(t, view, "7.5 MB/s")
	assert.Contains(t, view, "RESOURCE INSIGHTS")
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁█", Sparkline([]float64{0, 100}, 10, 0, 100))
	assert.Equal(t, "█", Sparkline([]float64{0, 150}, 1, 0, 100), "keeps the newest values and clamps")
	assert.Empty(t, Sparkline(nil, 0, 0, 100))
}

func TestExplorer_Navigation(t *testing.T) {
	e := NewExplorer("explorer-1", "File Explorer", vfs.DefaultTree(), ui.DefaultStyles)
	e.SetFocus(true)

	assert.Equal(t, "/", e.Browser().Path())
	_, ok := e.Yank()
	assert.False(t, ok)

	// bin is the first folder
	e.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "/bin", e.Browser().Path())

	e.Update(tea.KeyMsg{Type: tea.KeyDown})
	path, ok := e.Yank()
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(path, "/bin/"))

	e.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "/", e.Browser().Path())

	assert.Contains(t, e.View(60, 20), "root@grid:")
}

func TestLogs_CursorAndView(t *testing.T) {
	l := NewLogs("logs-1", "System Logs", ui.DefaultStyles)
	l.SetFocus(true)
	log := kernel.NewLog(10)
	log.Add(kernel.LevelSystem, "first")
	log.Add(kernel.LevelWarn, "second")
	l.SetEntries(log.Entries())

	msg, ok := l.Yank()
	assert.True(t, ok)
	assert.Equal(t, "second", msg)

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	msg, _ = l.Yank()
	assert.Equal(t, "first", msg)

	l.SetEntries(nil)
	_, ok = l.Yank()
	assert.False(t, ok)
	assert.Contains(t, l.View(50, 10), "No kernel messages")
}

func TestSearch_RoundTrip(t *testing.T) {
	gw := &fakeGateway{resp: gateway.Response{Text: "sunny", Sources: []gateway.Source{{Title: "Weather", URI: "https://w.example"}}}}
	s := NewSearch(gw, ui.DefaultStyles)

	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ignored")})
	assert.Empty(t, s.input.Value(), "inactive bar ignores keys")

	s.Activate()
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("weather")})
	msgs := collect(s.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.True(t, s.Loading())
	assert.False(t, s.Active())

	logMsg, ok := find[LogMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, "Initiating Grid Search: weather", logMsg.Message)

	result, ok := find[SearchResultMsg](msgs)
	require.True(t, ok)
	s.Update(result)

	assert.False(t, s.Loading())
	resp, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, "sunny", resp.Text)
	assert.Contains(t, s.ResultView(80, 20), "Grid Search Results")

	s.Dismiss()
	_, ok = s.Result()
	assert.False(t, ok)
}

func TestHelp_View(t *testing.T) {
	view := NewHelp(ui.DefaultStyles).View(80, 40)

	assert.Contains(t, view, "Keybindings")
	assert.Contains(t, view, "C-g")
}

func TestTail(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"c", "d"}, tail(lines, 2, 0))
	assert.Equal(t, []string{"b", "c"}, tail(lines, 2, 1))
	assert.Equal(t, []string{"a", "b", "c", "d"}, tail(lines, 10, 0))
	assert.Equal(t, 2, clampScroll(5, 4, 2))
}
