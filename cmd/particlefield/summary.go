package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/particlefield/engine"
	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/status"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(24)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// fpsHistory keeps the most recent FPS checkpoints, fed from the stats sink
type fpsHistory struct {
	mu     sync.Mutex
	values []float64
	limit  int
	frames uint64
}

func newFPSHistory(limit int) *fpsHistory {
	return &fpsHistory{limit: max(limit, 1)}
}

// observe records the FPS once per measurement window
func (h *fpsHistory) observe(s engine.Stats) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.FPS <= 0 {
		return
	}
	if len(h.values) > 0 && s.Frames < h.frames+parameter.AdaptiveWindowFrames {
		return
	}
	h.frames = s.Frames
	h.values = append(h.values, s.FPS)
	if len(h.values) > h.limit {
		h.values = h.values[len(h.values)-h.limit:]
	}
}

func (h *fpsHistory) snapshot() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]float64(nil), h.values...)
}

// statusLine formats the single line HUD drawn over the field
func statusLine(s engine.Stats) string {
	state := "running"
	if !s.Running {
		state = "paused"
	}
	return fmt.Sprintf(" %s/%s particles  %.0f fps  %s links  %s  %s ",
		humanize.Comma(int64(s.Particles)), humanize.Comma(int64(s.Target)),
		s.FPS, humanize.Comma(int64(s.Connections)), s.Mode, state)
}

// renderSummary builds the exit report printed after the screen is released
func renderSummary(s engine.Stats, history []float64, reg *status.Registry, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("particlefield"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("run time", elapsed.Round(time.Second).String())
	row("frames", humanize.Comma(int64(s.Frames)))
	row("particles", fmt.Sprintf("%s of %s", humanize.Comma(int64(s.Particles)), humanize.Comma(int64(s.Target))))
	row("mode", s.Mode)
	row("last frame", s.FrameTime.String())

	if reg != nil {
		reg.Each(func(key, value string) {
			row(key, value)
		})
	}

	if len(history) > 1 {
		chart := asciigraph.Plot(history,
			asciigraph.Height(6),
			asciigraph.Width(min(len(history), 60)),
			asciigraph.Precision(0),
			asciigraph.Caption("FPS"))
		b.WriteString(graphStyle.Render(chart))
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
