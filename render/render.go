// Package render draws grids, paths, cost fields and components as text.
//
// Text keeps the classic layout (path "*", obstacle "#", costs with one
// decimal). Styled draws the same map with lipgloss colors, marking the
// start with "A" and the goal with "B".
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Glyphs used by every renderer.
const (
	PathGlyph      = "*"
	ObstacleGlyph  = "#"
	StartGlyph     = "A"
	GoalGlyph      = "B"
	UnreachedGlyph = "."
)

// Theme holds one style per kind of cell.
type Theme struct {
	Path     lipgloss.Style
	Start    lipgloss.Style
	Goal     lipgloss.Style
	Obstacle lipgloss.Style
	Cell     lipgloss.Style
}

// DefaultTheme returns the terminal palette used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		Path:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F")).Bold(true),
		Start:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3498DB")).Bold(true),
		Goal:     lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7")).Bold(true),
		Obstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
		Cell:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// PlainTheme returns a theme without any styling.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Path: s, Start: s, Goal: s, Obstacle: s, Cell: s}
}

// Text renders g with path cells marked, one line per row, cells separated
// by a single space. A nil path renders the bare map.
func Text(g *gridgraph.Grid, path []gridgraph.Coord) string {
	on := pathSet(g, path)
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(textCell(g, gridgraph.Coord{Row: r, Col: c}, on))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Styled renders g like Text but with the theme's styles, right-aligned
// columns and distinct start and goal glyphs.
func Styled(g *gridgraph.Grid, path []gridgraph.Coord, theme Theme) string {
	on := pathSet(g, path)
	var start, goal gridgraph.Coord
	hasEnds := len(path) > 0
	if hasEnds {
		start, goal = path[0], path[len(path)-1]
	}

	width := 1
	for i := 0; i < g.Len(); i++ {
		if n := len(textCell(g, g.CoordOf(i), nil)); n > width {
			width = n
		}
	}

	rows := make([]string, g.Rows)
	cells := make([]string, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			at := gridgraph.Coord{Row: r, Col: c}
			glyph := textCell(g, at, on)
			style := theme.Cell
			switch {
			case hasEnds && at == start:
				glyph, style = StartGlyph, theme.Start
			case hasEnds && at == goal:
				glyph, style = GoalGlyph, theme.Goal
			case glyph == PathGlyph:
				style = theme.Path
			case glyph == ObstacleGlyph:
				style = theme.Obstacle
			}
			cells[c] = style.Render(pad(glyph, width))
		}
		rows[r] = strings.Join(cells, " ")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// Field renders a cost field: obstacles "#", unreached cells ".", every other
// cell its minimum cost from the source with one decimal.
func Field(g *gridgraph.Grid, f *dijkstra.Field) string {
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			at := gridgraph.Coord{Row: r, Col: c}
			cost, ok := f.CostTo(at)
			switch {
			case !g.Passable(at):
				sb.WriteString(ObstacleGlyph)
			case !ok:
				sb.WriteString(UnreachedGlyph)
			default:
				sb.WriteString(formatCost(cost))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Components renders component labels: obstacles "#", every passable cell
// its component number in base 36 (0-9, then a-z). Labels beyond 35 wrap.
func Components(g *gridgraph.Grid) string {
	labels := g.ComponentLabels()
	var sb strings.Builder
	for i, l := range labels {
		c := g.CoordOf(i)
		if c.Col > 0 {
			sb.WriteByte(' ')
		}
		if l < 0 {
			sb.WriteString(ObstacleGlyph)
		} else {
			sb.WriteString(strconv.FormatInt(int64(l%36), 36))
		}
		if c.Col == g.Cols-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func textCell(g *gridgraph.Grid, c gridgraph.Coord, on map[gridgraph.Coord]struct{}) string {
	if _, ok := on[c]; ok {
		return PathGlyph
	}
	if !g.Passable(c) {
		return ObstacleGlyph
	}

	return formatCost(g.Value(c))
}

func formatCost(v float64) string {
	if math.IsInf(v, 1) {
		return UnreachedGlyph
	}

	return strconv.FormatFloat(v, 'f', 1, 64)
}

func pathSet(g *gridgraph.Grid, path []gridgraph.Coord) map[gridgraph.Coord]struct{} {
	on := make(map[gridgraph.Coord]struct{}, len(path))
	for _, c := range path {
		if g.InBounds(c) {
			on[c] = struct{}{}
		}
	}

	return on
}

func pad(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}

	return s
}
