package core

import "math"

// CellAspect is how many times taller a terminal cell is than it is wide.
const CellAspect = 2.0

// Viewport maps world space (origin bottom-left, Y up) onto screen cells
// (origin top-left, Y down). The projection is letterboxed so the world keeps
// its aspect ratio on any screen size.
type Viewport struct {
	worldW, worldH float64

	screenW, screenH int
	scale            float64 // screen columns per world unit
	offX, offY       int
	cols, rows       int
}

// NewViewport creates a viewport for a world of the given size in world units.
func NewViewport(worldW, worldH float64) *Viewport {
	return &Viewport{worldW: worldW, worldH: worldH}
}

// Resize recomputes the projection for a screen of width x height cells.
func (v *Viewport) Resize(width, height int) {
	v.screenW, v.screenH = width, height
	if width <= 0 || height <= 0 || v.worldW <= 0 || v.worldH <= 0 {
		v.scale, v.cols, v.rows, v.offX, v.offY = 0, 0, 0, 0, 0
		return
	}

	sx := float64(width) / v.worldW
	sy := float64(height) * CellAspect / v.worldH
	v.scale = math.Min(sx, sy)

	v.cols = int(math.Round(v.worldW * v.scale))
	v.rows = int(math.Round(v.worldH * v.scale / CellAspect))
	v.offX = (width - v.cols) / 2
	v.offY = (height - v.rows) / 2
}

// Scale returns the number of screen columns per world unit.
func (v *Viewport) Scale() float64 {
	return v.scale
}

// Bounds returns the screen area the world occupies after letterboxing.
func (v *Viewport) Bounds() Area {
	return Area{X: v.offX, Y: v.offY, W: v.cols, H: v.rows}
}

// Project maps a world rectangle to screen cells. Anything with a non-zero
// size covers at least one cell.
func (v *Viewport) Project(r Rect) Area {
	if v.scale == 0 {
		return Area{}
	}
	sy := v.scale / CellAspect
	rowsF := v.worldH * sy

	x0 := int(math.Floor(r.X * v.scale))
	x1 := int(math.Ceil(r.Right()*v.scale - 1e-9))
	y0 := int(math.Floor(rowsF - r.Top()*sy + 1e-9))
	y1 := int(math.Ceil(rowsF - r.Y*sy - 1e-9))

	return Area{
		X: v.offX + x0,
		Y: v.offY + y0,
		W: Max(1, x1-x0),
		H: Max(1, y1-y0),
	}
}

// ProjectPoint maps a world point to the screen cell containing it.
func (v *Viewport) ProjectPoint(x, y float64) (int, int) {
	if v.scale == 0 {
		return 0, 0
	}
	sy := v.scale / CellAspect
	col := int(math.Floor(x * v.scale))
	row := int(math.Floor(v.worldH*sy - y*sy))
	return v.offX + col, v.offY + row
}

// Unproject maps the center of a screen cell back to world space.
func (v *Viewport) Unproject(col, row int) (float64, float64) {
	if v.scale == 0 {
		return 0, 0
	}
	sy := v.scale / CellAspect
	x := (float64(col-v.offX) + 0.5) / v.scale
	y := v.worldH - (float64(row-v.offY)+0.5)/sy
	return x, y
}
