package gridfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for grid documents.
var (
	// ErrBadCell indicates a cell that is neither a number nor an obstacle marker.
	ErrBadCell = errors.New("gridfile: cell must be a number or an obstacle marker")
	// ErrMissingEndpoint indicates a document without start or goal.
	ErrMissingEndpoint = errors.New("gridfile: start and goal are required")
	// ErrBadEndpoint indicates a coordinate that is not a [row, col] pair.
	ErrBadEndpoint = errors.New("gridfile: coordinate must be [row, col]")
	// ErrBadHeuristic indicates an unknown heuristic name.
	ErrBadHeuristic = errors.New("gridfile: unknown heuristic")
	// ErrBadSearch indicates invalid search settings.
	ErrBadSearch = errors.New("gridfile: invalid search settings")
)

const nullTag = "!!null"

// Heuristic names accepted in SearchConfig.Heuristic.
const (
	HeuristicManhattan = "manhattan"
	HeuristicZero      = "zero"
)

// Cell is one grid value. It decodes from a YAML number or an obstacle marker.
type Cell float64

// UnmarshalYAML accepts numbers and the markers "#", "x", "X". Null is rejected.
func (c *Cell) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrBadCell, value.Line)
	}
	if value.ShortTag() == nullTag {
		return fmt.Errorf("%w: null at line %d", ErrBadCell, value.Line)
	}
	switch strings.TrimSpace(value.Value) {
	case "#", "x", "X":
		*c = Cell(gridgraph.Obstacle)
		return nil
	}
	var f float64
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("%w: %q at line %d", ErrBadCell, value.Value, value.Line)
	}
	*c = Cell(f)

	return nil
}

// MarshalYAML writes obstacles as "#" and other cells as numbers.
func (c Cell) MarshalYAML() (interface{}, error) {
	if float64(c) == gridgraph.Obstacle {
		return "#", nil
	}

	return float64(c), nil
}

// SearchConfig holds optional search settings.
type SearchConfig struct {
	Heuristic     string `yaml:"heuristic,omitempty"`
	MaxExpansions int    `yaml:"max_expansions,omitempty"`
}

// Document is a decoded grid file.
type Document struct {
	Cells  [][]Cell     `yaml:"cells"`
	Start  []int        `yaml:"start,omitempty,flow"`
	Goal   []int        `yaml:"goal,omitempty,flow"`
	Search SearchConfig `yaml:"search,omitempty"`
}

// UnmarshalYAML decodes the document, walking the cell rows node by node.
// yaml.v3 drops null sequence items that cannot hold nil, which would shift
// every later cell of the row one column left.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Cells  yaml.Node    `yaml:"cells"`
		Start  []int        `yaml:"start"`
		Goal   []int        `yaml:"goal"`
		Search SearchConfig `yaml:"search"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	cells, err := decodeCells(&raw.Cells)
	if err != nil {
		return err
	}
	*d = Document{Cells: cells, Start: raw.Start, Goal: raw.Goal, Search: raw.Search}

	return nil
}

// decodeCells converts the cells node into rows. An absent or null node
// yields no rows; every row must be a sequence.
func decodeCells(node *yaml.Node) ([][]Cell, error) {
	if node.Kind == 0 || node.ShortTag() == nullTag {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: cells must be a list of rows at line %d", ErrBadCell, node.Line)
	}
	cells := make([][]Cell, len(node.Content))
	for r, row := range node.Content {
		if row.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: row %d is not a list at line %d", ErrBadCell, r, row.Line)
		}
		cells[r] = make([]Cell, len(row.Content))
		for c, item := range row.Content {
			if err := cells[r][c].UnmarshalYAML(item); err != nil {
				return nil, err
			}
		}
	}

	return cells, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a YAML document and validates it.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gridfile: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Marshal encodes the document as YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// FromGrid builds a document from a grid and endpoints.
func FromGrid(g *gridgraph.Grid, start, goal gridgraph.Coord) *Document {
	values := g.Values()
	cells := make([][]Cell, len(values))
	for r, row := range values {
		cells[r] = make([]Cell, len(row))
		for c, v := range row {
			cells[r][c] = Cell(v)
		}
	}

	return &Document{
		Cells: cells,
		Start: []int{start.Row, start.Col},
		Goal:  []int{goal.Row, goal.Col},
	}
}

// Validate checks the grid shape and values, endpoint shapes and search settings.
// Missing endpoints are allowed here; see Endpoints.
func (d *Document) Validate() error {
	if _, err := d.Grid(); err != nil {
		return err
	}
	for _, p := range [][]int{d.Start, d.Goal} {
		if p != nil && len(p) != 2 {
			return fmt.Errorf("%w: got %v", ErrBadEndpoint, p)
		}
	}
	if _, err := d.SearchOptions(); err != nil {
		return err
	}

	return nil
}

// Grid builds the immutable grid described by the document.
func (d *Document) Grid() (*gridgraph.Grid, error) {
	values := make([][]float64, len(d.Cells))
	for r, row := range d.Cells {
		values[r] = make([]float64, len(row))
		for c, v := range row {
			values[r][c] = float64(v)
		}
	}

	return gridgraph.New(values)
}

// Endpoints returns the start and goal coordinates.
func (d *Document) Endpoints() (start, goal gridgraph.Coord, err error) {
	if start, err = d.StartCoord(); err != nil {
		return start, goal, err
	}
	goal, err = d.GoalCoord()

	return start, goal, err
}

// StartCoord returns the start coordinate, ErrMissingEndpoint when unset.
func (d *Document) StartCoord() (gridgraph.Coord, error) {
	return pointCoord(d.Start, "start")
}

// GoalCoord returns the goal coordinate, ErrMissingEndpoint when unset.
func (d *Document) GoalCoord() (gridgraph.Coord, error) {
	return pointCoord(d.Goal, "goal")
}

func pointCoord(p []int, name string) (gridgraph.Coord, error) {
	switch {
	case p == nil:
		return gridgraph.Coord{}, fmt.Errorf("%w: %s", ErrMissingEndpoint, name)
	case len(p) != 2:
		return gridgraph.Coord{}, fmt.Errorf("%w: %s %v", ErrBadEndpoint, name, p)
	}

	return gridgraph.Coord{Row: p[0], Col: p[1]}, nil
}

// SearchOptions translates the search block into astar options.
func (d *Document) SearchOptions() ([]astar.Option, error) {
	var opts []astar.Option
	h, err := HeuristicByName(d.Search.Heuristic)
	if err != nil {
		return nil, err
	}
	if h != nil {
		opts = append(opts, astar.WithHeuristic(h))
	}
	if d.Search.MaxExpansions < 0 {
		return nil, fmt.Errorf("%w: max_expansions %d", ErrBadSearch, d.Search.MaxExpansions)
	}
	if d.Search.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(d.Search.MaxExpansions))
	}

	return opts, nil
}

// HeuristicByName maps a configured name to a heuristic. The empty name and
// "manhattan" both return nil, which selects astar's default: Manhattan
// distance scaled by the grid's cheapest cell (astar.GridManhattan), so the
// estimate stays admissible when costs are below 1. "zero" turns the search
// into Dijkstra.
func HeuristicByName(name string) (astar.Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", HeuristicManhattan:
		return nil, nil
	case HeuristicZero:
		return astar.Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadHeuristic, name)
	}
}

// ParseCoord parses "row,col" (spaces allowed) into a coordinate.
func ParseCoord(s string) (gridgraph.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", ErrBadEndpoint, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", ErrBadEndpoint, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", ErrBadEndpoint, s)
	}

	return gridgraph.Coord{Row: row, Col: col}, nil
}
