package giftrun

import (
	"errors"
	"fmt"
)

// Map legend.
const (
	CellEmpty    = ' '
	CellSolid    = '#'
	CellLadder   = 'H'
	CellPlayer   = '@'
	CellReindeer = 'R'
	CellSnowman  = 'S'
)

// DefaultTemplate is the fixed level layout, top row first.
// Ladders extend one cell above the floor they pierce.
var DefaultTemplate = []string{
	"                         ",
	"           H             ",
	"      #####H#####        ",
	"           H             ",
	"           H             ",
	"    H   R  H             ",
	"####H############        ",
	"    H                    ",
	"    H                    ",
	"    H         S     H    ",
	"  ##################H##  ",
	"                    H    ",
	"                    H    ",
	"  @         R       H    ",
	"#########################",
}

// Template errors.
var (
	ErrEmptyTemplate        = errors.New("empty template")
	ErrRaggedTemplate       = errors.New("template rows differ in length")
	ErrUnknownMapCell       = errors.New("unknown map character")
	ErrNoPlayerSpawn        = errors.New("template has no player spawn")
	ErrMultiplePlayerSpawns = errors.New("template has more than one player spawn")
	ErrNoReachableFloor     = errors.New("template has no reachable floor")
)

// Grid is a parsed template. Row 0 is the bottom of the world.
type Grid struct {
	W, H  int
	cells [][]byte // [y][x]
}

// ParseTemplate builds a Grid from rows written top row first.
func ParseTemplate(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyTemplate
	}

	w := len(lines[0])
	h := len(lines)
	g := &Grid{W: w, H: h, cells: make([][]byte, h)}

	for i, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedTemplate, i, len(line), w)
		}
		y := h - 1 - i
		row := []byte(line)
		for x, c := range row {
			switch c {
			case CellEmpty, CellSolid, CellLadder, CellPlayer, CellReindeer, CellSnowman:
			default:
				return nil, fmt.Errorf("%w: %q at column %d, row %d", ErrUnknownMapCell, c, x, i)
			}
		}
		g.cells[y] = row
	}
	return g, nil
}

// At returns the cell at (x, y). Cells outside the grid read as empty.
func (g *Grid) At(x, y int) byte {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return CellEmpty
	}
	return g.cells[y][x]
}

// IsSpawn reports whether the cell holds a spawn marker.
func (g *Grid) IsSpawn(x, y int) bool {
	switch g.At(x, y) {
	case CellPlayer, CellReindeer, CellSnowman:
		return true
	}
	return false
}

// IsStandingSpot reports whether (x, y) is an empty cell directly above a solid cell.
func (g *Grid) IsStandingSpot(x, y int) bool {
	return y > 0 && g.At(x, y) == CellEmpty && g.At(x, y-1) == CellSolid
}

// Each calls fn for every cell, scanning rows bottom to top and columns left to right.
func (g *Grid) Each(fn func(x, y int, c byte)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}
