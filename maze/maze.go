// Package maze loads the plain-text maze format into a Grid and derives the
// vehicle's start configuration from the scanned start markers.
package maze

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/pkg/errors"

	"github.com/KoalaWill/maze-motionplan/vehicle"
)

// Cell is a single grid cell code.
type Cell int

// Cell codes as read from the maze file. Code 5 ("unknown") never appears
// in a well-formed file but is what a malformed digit parses to; a single
// bad rune degrades that cell rather than aborting the whole load.
const (
	CellWall      Cell = 0
	CellFree      Cell = 1
	CellStart     Cell = 2
	CellObjective Cell = 3
	CellUnknown   Cell = 5
)

// ErrInconsistentRows is returned when not every non-empty line of the
// maze file has the same column count.
var ErrInconsistentRows = errors.New("maze: inconsistent row lengths")

// ErrNoStartMarker is returned when the maze file contains no '2' cell.
var ErrNoStartMarker = errors.New("maze: no start marker found")

// ErrEmptyMaze is returned when the input has no non-empty rows.
var ErrEmptyMaze = errors.New("maze: empty input")

// Grid is an R x C array of cell codes. It is logically immutable during
// planning, with one exception: reachability.Analyze demotes unreached
// objective cells from CellObjective to CellFree in place.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates a Grid of the given dimensions, all cells CellWall.
func NewGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// At returns the cell code at (x, y), where x is the column and y is the
// row. At does no bounds check: an out-of-range offset panics, but an x
// outside [0, Cols) whose linear offset still lands inside the grid reads a
// cell of another row. Callers must bounds-check first, since every caller
// in this engine already knows the grid dimensions.
func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.cols+x]
}

// Set overwrites the cell code at (x, y).
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[y*g.cols+x] = c
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// StartConfig is the vehicle's derived initial configuration.
type StartConfig struct {
	X, Y        int
	Orientation vehicle.Orientation
}

// Load parses the maze file format: one row per
// line, single-digit cell codes, no separators, stray spaces ignored.
// Every non-empty line must share the same column count once spaces are
// stripped.
func Load(data []byte) (*Grid, StartConfig, error) {
	var rawRows [][]byte
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.ReplaceAll(scanner.Text(), " ", "")
		if line == "" {
			continue
		}
		rawRows = append(rawRows, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, StartConfig{}, errors.Wrap(err, "maze: reading input")
	}
	if len(rawRows) == 0 {
		return nil, StartConfig{}, ErrEmptyMaze
	}

	cols := len(rawRows[0])
	for _, row := range rawRows {
		if len(row) != cols {
			return nil, StartConfig{}, ErrInconsistentRows
		}
	}

	grid := NewGrid(len(rawRows), cols)
	startX, startY, startOrientation := -1, -1, vehicle.Orientation0
	haveStart := false

	for y, row := range rawRows {
		for x, ch := range row {
			cell := parseCell(ch)
			grid.Set(x, y, cell)
			if cell != CellStart {
				continue
			}
			// Row-major scan: a marker in a later row always overwrites an
			// earlier row's as "the" start.
			haveStart = true
			startX, startY = x, y
			startOrientation = vehicle.Orientation0
			if x >= 2 && grid.At(x-1, y) == CellStart && grid.At(x-2, y) == CellStart {
				startOrientation = vehicle.Orientation3
				startX = x - 2
			} else if x >= 1 && grid.At(x-1, y) == CellStart {
				startOrientation = vehicle.Orientation2
			}
		}
	}

	if !haveStart {
		return nil, StartConfig{}, ErrNoStartMarker
	}

	return grid, StartConfig{X: startX, Y: startY, Orientation: startOrientation}, nil
}

// parseCell maps a maze-file rune to a Cell, using CellUnknown for any rune
// outside '0'-'9' instead of failing the whole load.
func parseCell(ch byte) Cell {
	if ch < '0' || ch > '9' {
		return CellUnknown
	}
	return Cell(ch - '0')
}
