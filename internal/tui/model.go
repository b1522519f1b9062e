// Package tui is the terminal front end of the visualizer: four sliders, the
// production curve chart, the output comparison bars and the statistics
// panel, all redrawn after every slider change.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GoSim-25-26J-441/cobb-douglas/internal/production"
	"github.com/GoSim-25-26J-441/cobb-douglas/internal/store"
)

const (
	defaultWidth  = 120
	defaultHeight = 40
	leftColumn    = 56
	stackBelow    = 90 // narrower terminals stack the columns
	bigStep       = 10
)

// Model is the bubbletea model for the visualizer.
type Model struct {
	store   *store.Store
	sliders []store.Slider
	focus   int

	snap production.Snapshot
	err  error

	keys   keyMap
	help   help.Model
	track  progress.Model
	styles Styles

	width  int
	height int
}

// New creates a model backed by s.
func New(s *store.Store, styles Styles) Model {
	track := progress.New(
		progress.WithSolidFill(string(styles.Theme.Primary)),
		progress.WithoutPercentage(),
	)
	m := Model{
		store:   s,
		sliders: s.Sliders(),
		snap:    s.Snapshot(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		track:   track,
		styles:  styles,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus - 1 + len(m.sliders)) % len(m.sliders)
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(m.sliders)
	case key.Matches(msg, m.keys.SelectNth):
		if n := int(msg.String()[0] - '1'); n >= 0 && n < len(m.sliders) {
			m.focus = n
		}
	case key.Matches(msg, m.keys.Decrease):
		m.apply(m.store.Nudge(m.focused().ID, -1))
	case key.Matches(msg, m.keys.Increase):
		m.apply(m.store.Nudge(m.focused().ID, 1))
	case key.Matches(msg, m.keys.DecBig):
		m.apply(m.store.Nudge(m.focused().ID, -bigStep))
	case key.Matches(msg, m.keys.IncBig):
		m.apply(m.store.Nudge(m.focused().ID, bigStep))
	case key.Matches(msg, m.keys.Min):
		sl := m.focused()
		m.apply(m.store.Set(sl.ID, sl.Min))
	case key.Matches(msg, m.keys.Max):
		sl := m.focused()
		m.apply(m.store.Set(sl.ID, sl.Max))
	case key.Matches(msg, m.keys.Reset):
		m.apply(m.store.Reset())
	}
	return m, nil
}

func (m *Model) apply(snap production.Snapshot, err error) {
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.snap = snap
}

func (m Model) focused() store.Slider {
	return m.sliders[m.focus]
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.track.Width = m.sliderWidth()
}

func (m Model) stacked() bool {
	return m.width < stackBelow
}

func (m Model) sliderWidth() int {
	if m.stacked() {
		return max(m.width-6, 10)
	}
	return leftColumn - 6
}

func (m Model) rightWidth() int {
	if m.stacked() {
		return max(m.width-2, minChartWidth)
	}
	return max(m.width-leftColumn-4, minChartWidth)
}

// Snapshot returns the data currently on screen.
func (m Model) Snapshot() production.Snapshot {
	return m.snap
}

// Focused returns the id of the selected slider.
func (m Model) Focused() store.SliderID {
	return m.focused().ID
}

// View implements tea.Model.
func (m Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render("Cobb-Douglas Production Function"),
		m.styles.Subtitle.Render("Y = A × K^α × N^(1-α)"),
	)

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Panel.Width(m.sliderWidth()+2).Render(m.viewSliders()),
		m.styles.Panel.Width(m.sliderWidth()+2).Render(m.viewStats()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Section.Render(fmt.Sprintf("Output Comparison at K = %.1f", m.snap.Params.K)),
		renderBarChart(m.snap.Comparison, m.rightWidth(), m.styles),
		"",
		m.styles.Section.Render("Production Functions"),
		m.styles.Muted.Render("Level of output (Y)"),
		renderLineChart(m.snap, m.rightWidth(), m.chartHeight(), m.styles),
	)

	var body string
	if m.stacked() {
		body = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}

	parts := []string{header, "", body, "", m.viewInsight()}
	if m.err != nil {
		parts = append(parts, m.styles.Error.Render("error: "+m.err.Error()))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) chartHeight() int {
	return max(m.height/2-2, minChartHeight)
}

func (m Model) viewSliders() string {
	var b strings.Builder
	b.WriteString(m.styles.Section.Render("Parameters"))
	b.WriteString("\n")
	for i, sl := range m.sliders {
		v := sl.ID.In(m.snap.Params)
		label := m.styles.SliderLabel
		cursor := "  "
		if i == m.focus {
			label = m.styles.SliderFocused
			cursor = "▸ "
		}
		b.WriteString("\n")
		b.WriteString(label.Render(cursor + sl.Title(v)))
		b.WriteString("\n  ")
		b.WriteString(m.track.ViewAs(sl.Fraction(v)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewStats() string {
	p, cmp := m.snap.Params, m.snap.Comparison
	lines := []string{
		m.styles.Section.Render("Output Comparison:"),
		m.styles.Bold.Render(fmt.Sprintf("Current: Y = %.2f", cmp.CurrentOutput)),
		m.styles.Muted.Render(fmt.Sprintf("Baseline: Y = %.2f", cmp.BaselineOutput)),
		"",
		m.styles.Muted.Render(fmt.Sprintf("Current: A=%.2f, K=%.2f, N=%.2f, α=%.2f", p.A, p.K, p.N, p.Alpha)),
		m.styles.Muted.Render(fmt.Sprintf("Baseline: A=%g, K=%.2f, N=%g, α=%g",
			production.BaselineA, p.K, production.BaselineN, production.BaselineAlpha)),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewInsight() string {
	text := strings.Join([]string{
		m.styles.Section.Render("Economics Insight"),
		"The curvature of the Cobb-Douglas production function demonstrates diminishing marginal",
		"returns to capital: as more capital is added, the additional output gained from each unit decreases.",
		"",
		"Parameter α directly controls this curvature:",
		"  • When α is close to 0: the curve flattens quickly, showing rapid diminishing returns to capital",
		"  • When α is close to 1: the curve remains steeper, indicating slower diminishing returns",
		"  • Changes in A (productivity) shift the entire curve up or down",
		"  • Changes in N (labor) also shift the curve's position while maintaining its shape",
	}, "\n")
	return m.styles.Insight.Render(text)
}
