package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GoSim-25-26J-441/cobb-douglas/internal/production"
	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/utils"
)

// Glyphs used on the line chart.
const (
	glyphCurrent  = '●'
	glyphBaseline = '○'
	glyphMarker   = '┊'
	glyphBar      = '█'
)

const (
	yGutter        = 7 // "123.4 " plus one space
	minChartWidth  = 24
	minChartHeight = 8
	chartFooter    = 3 // x axis, x labels, legend
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellMarker
	cellBaseline
	cellCurrent
)

// chartScale maps domain/output values onto grid cells.
type chartScale struct {
	domain production.Domain
	yMax   float64
	cols   int
	rows   int
}

func (s chartScale) col(k float64) int {
	return int(math.Round(utils.Lerp(k, s.domain.Min, s.domain.Max, 0, float64(s.cols-1))))
}

func (s chartScale) row(y float64) int {
	r := int(math.Round(utils.Lerp(y, 0, s.yMax, 0, float64(s.rows-1))))
	return s.rows - 1 - r
}

func (s chartScale) inDomain(k float64) bool {
	return k >= s.domain.Min && k <= s.domain.Max
}

// niceCeil rounds v up to the next multiple of 10 so axis labels stay round.
func niceCeil(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 1
	}
	if v < 10 {
		return math.Ceil(v)
	}
	return math.Ceil(v/10) * 10
}

// chartYMax is the upper bound of the y axis: the tallest curve or marker.
func chartYMax(snap production.Snapshot) float64 {
	top := utils.MaxFloat64(snap.Current.MaxOutput(), snap.Baseline.MaxOutput())
	top = utils.MaxFloat64(top, snap.Comparison.MarkerTop())
	return niceCeil(top)
}

// renderLineChart draws both curves and the K marker in exactly height lines
// of width columns. The x axis always spans the full sampling domain.
func renderLineChart(snap production.Snapshot, width, height int, st Styles) string {
	width = max(width, minChartWidth)
	height = max(height, minChartHeight)

	scale := chartScale{
		domain: snap.Domain,
		yMax:   chartYMax(snap),
		cols:   width - yGutter - 1,
		rows:   height - chartFooter,
	}

	grid := make([][]cellKind, scale.rows)
	for i := range grid {
		grid[i] = make([]cellKind, scale.cols)
	}

	if k := snap.Comparison.K; scale.inDomain(k) {
		c := scale.col(k)
		top := scale.row(snap.Comparison.MarkerTop())
		for r := max(top, 0); r < scale.rows; r++ {
			grid[r][c] = cellMarker
		}
	}
	plotSeries(grid, scale, snap.Baseline, cellBaseline)
	plotSeries(grid, scale, snap.Current, cellCurrent)

	var b strings.Builder
	for r := 0; r < scale.rows; r++ {
		b.WriteString(st.Axis.Render(yLabel(scale, r)))
		b.WriteString(st.Axis.Render("│"))
		for c := 0; c < scale.cols; c++ {
			b.WriteString(renderCell(grid[r][c], st))
		}
		b.WriteByte('\n')
	}

	b.WriteString(st.Axis.Render(strings.Repeat(" ", yGutter) + "└" + strings.Repeat("─", scale.cols)))
	b.WriteByte('\n')
	b.WriteString(st.Axis.Render(xLabels(scale, width)))
	b.WriteByte('\n')
	b.WriteString(legend(st))
	return b.String()
}

// plotSeries marks every point of s and fills vertical gaps between
// neighbouring points so steep stretches read as a line.
func plotSeries(grid [][]cellKind, scale chartScale, s production.CurveSeries, kind cellKind) {
	prevCol, prevRow := -1, -1
	for _, pt := range s.Points {
		if !scale.inDomain(pt.K) {
			continue
		}
		c, r := scale.col(pt.K), scale.row(pt.Output)
		if r < 0 || r >= scale.rows {
			prevCol = -1
			continue
		}
		if prevCol >= 0 && c-prevCol <= 1 {
			lo, hi := min(prevRow, r), max(prevRow, r)
			for fill := lo; fill <= hi; fill++ {
				grid[fill][c] = kind
			}
		}
		grid[r][c] = kind
		prevCol, prevRow = c, r
	}
}

func renderCell(k cellKind, st Styles) string {
	switch k {
	case cellCurrent:
		return st.Current.Render(string(glyphCurrent))
	case cellBaseline:
		return st.Baseline.Render(string(glyphBaseline))
	case cellMarker:
		return st.Marker.Render(string(glyphMarker))
	default:
		return " "
	}
}

// yLabel labels the top, middle and bottom rows.
func yLabel(scale chartScale, r int) string {
	var v float64
	switch r {
	case 0:
		v = scale.yMax
	case scale.rows / 2:
		v = scale.yMax * float64(scale.rows-1-r) / float64(scale.rows-1)
	case scale.rows - 1:
		v = 0
	default:
		return strings.Repeat(" ", yGutter)
	}
	return fmt.Sprintf("%*.1f ", yGutter-1, v)
}

func xLabels(scale chartScale, width int) string {
	left := fmt.Sprintf("%g", scale.domain.Min)
	right := fmt.Sprintf("%g", scale.domain.Max)
	title := "Level of capital (K)"
	line := []rune(strings.Repeat(" ", width))
	copy(line[yGutter+1:], []rune(left))
	if mid := yGutter + 1 + (scale.cols-len(title))/2; mid > yGutter+len(left)+2 {
		copy(line[mid:], []rune(title))
	}
	copy(line[width-len(right):], []rune(right))
	return string(line)
}

func legend(st Styles) string {
	return strings.Join([]string{
		st.Current.Render(string(glyphCurrent) + " " + production.SeriesCurrent),
		st.Baseline.Render(string(glyphBaseline) + " " + production.SeriesBaseline),
		st.Marker.Render(string(glyphMarker) + " " + production.SeriesMarker),
	}, "  ")
}

// renderBarChart draws the two-category output comparison as horizontal bars
// scaled from zero.
func renderBarChart(cmp production.ComparisonPair, width int, st Styles) string {
	const labelW, valueW = 9, 8
	barW := max(width-labelW-valueW-2, 4)
	top := utils.MaxFloat64(cmp.CurrentOutput, cmp.BaselineOutput)

	row := func(name string, v float64, style lipgloss.Style) string {
		n := 0
		if top > 0 {
			n = int(math.Round(v / top * float64(barW)))
		}
		n = max(min(n, barW), 0)
		bar := style.Render(strings.Repeat(string(glyphBar), n)) + strings.Repeat(" ", barW-n)
		return fmt.Sprintf("%-*s %s %*.2f", labelW, name, bar, valueW, v)
	}

	return row("Current", cmp.CurrentOutput, st.Current) + "\n" +
		row("Baseline", cmp.BaselineOutput, st.Baseline)
}
