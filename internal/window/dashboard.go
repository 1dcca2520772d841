package window

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/gridos/internal/metrics"
	"github.com/kmacinski/gridos/internal/ui"
)

// Insight is the static resource advice shown under the gauges
const Insight = "System resources are operating within nominal parameters. " +
	"AI Kernel suggests optimizing background daemon tasks to reduce thermal overhead."

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Dashboard shows the simulated system load
type Dashboard struct {
	Base
	sample  metrics.Sample
	cpu     []float64
	mem     []float64
	cpuBar  progress.Model
	memBar  progress.Model
	diskBar progress.Model
}

// NewDashboard creates a dashboard bound to window id
func NewDashboard(id, title string, styles ui.Styles) *Dashboard {
	d := &Dashboard{
		Base:   NewBase(id, title, styles),
		sample: metrics.Initial,
	}
	d.SetStyles(styles)
	return d
}

// SetStyles swaps the palette and rebuilds the gauges
func (d *Dashboard) SetStyles(styles ui.Styles) {
	d.Base.SetStyles(styles)
	d.cpuBar = newBar(string(styles.Colors.Accent))
	d.memBar = newBar(string(styles.Colors.Secondary))
	d.diskBar = newBar(string(styles.Colors.Assistant))
}

func newBar(color string) progress.Model {
	return progress.New(progress.WithSolidFill(color), progress.WithoutPercentage())
}

// SetMetrics updates the current sample and the cpu and memory sparkline series
func (d *Dashboard) SetMetrics(sample metrics.Sample, cpu, mem []float64) {
	d.sample = sample
	d.cpu = cpu
	d.mem = mem
}

// Sample returns the sample on display
func (d *Dashboard) Sample() metrics.Sample {
	return d.sample
}

// Update does nothing, the dashboard is fed by the desktop
func (d *Dashboard) Update(msg tea.Msg) (Window, tea.Cmd) {
	return d, nil
}

// View renders the gauges
func (d *Dashboard) View(width, height int) string {
	contentWidth := width - 2
	if contentWidth < 1 || height < 3 {
		return d.Frame(nil, width, height)
	}

	labelWidth := 14
	valueWidth := 7
	barWidth := max(1, contentWidth-labelWidth-valueWidth-1)
	d.cpuBar.Width = barWidth
	d.memBar.Width = barWidth
	d.diskBar.Width = barWidth

	sparkWidth := max(1, contentWidth-labelWidth)
	label := func(s string) string {
		return d.styles.Muted.Render(fmt.Sprintf("%-*s", labelWidth, s))
	}
	value := func(v float64) string {
		return d.styles.Bold.Render(fmt.Sprintf("%*.0f%% ", valueWidth-2, v))
	}

	lines := []string{
		d.styles.Muted.Render("SYSTEM LOAD (CPU/MEM)"),
		label("cpu") + d.styles.Accent.Render(Sparkline(d.cpu, sparkWidth, 0, 100)),
		label("mem") + d.styles.Input.Render(Sparkline(d.mem, sparkWidth, 0, 100)),
		"",
		label("CPU USAGE") + value(d.sample.CPU) + d.cpuBar.ViewAs(d.sample.CPU/100),
		label("MEMORY ALLOC") + value(d.sample.Memory) + d.memBar.ViewAs(d.sample.Memory/100),
		label("DISK") + value(d.sample.Disk) + d.diskBar.ViewAs(d.sample.Disk/100),
		label("NETWORK") + d.styles.Bold.Render(fmt.Sprintf("%.1f MB/s", d.sample.Network)),
		"",
		d.styles.Muted.Render("RESOURCE INSIGHTS"),
	}
	lines = appendStyled(lines, d.styles.Muted.Italic(true), `"`+Insight+`"`, contentWidth)

	return d.Frame(lines, width, height)
}

// Sparkline draws the last width values as block characters scaled between lo and hi
func Sparkline(values []float64, width int, lo, hi float64) string {
	if width < 1 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		idx = max(0, min(len(sparkBlocks)-1, idx))
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}
