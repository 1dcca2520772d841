package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Button is a clickable label on a bar
type Button struct {
	ID    string
	Label string
	Style lipgloss.Style
}

// Span is the column range a button occupies, End exclusive
type Span struct {
	ID    string
	Start int
	End   int
}

// RenderBar lays out left, the buttons and right on one line of width cells.
// Buttons that do not fit are dropped. The returned spans locate the drawn buttons.
func RenderBar(width int, style lipgloss.Style, left string, buttons []Button, right string) (string, []Span) {
	if width < 1 {
		return "", nil
	}

	var b strings.Builder
	var spans []Span
	x := 0
	b.WriteString(left)
	x += ansi.StringWidth(left)

	rightWidth := ansi.StringWidth(right)
	for _, btn := range buttons {
		rendered := btn.Style.Render(btn.Label)
		w := ansi.StringWidth(rendered)
		if x+w+1 > width-rightWidth {
			break
		}
		b.WriteString(" ")
		x++
		spans = append(spans, Span{ID: btn.ID, Start: x, End: x + w})
		b.WriteString(rendered)
		x += w
	}

	if gap := width - x - rightWidth; gap > 0 {
		b.WriteString(strings.Repeat(" ", gap))
		b.WriteString(right)
	}

	line := ansi.Truncate(b.String(), width, "")
	return style.Width(width).Render(line), spans
}

// HitSpan returns the id of the span covering column x
func HitSpan(spans []Span, x int) (string, bool) {
	for _, s := range spans {
		if x >= s.Start && x < s.End {
			return s.ID, true
		}
	}
	return "", false
}
