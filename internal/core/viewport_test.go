package core

import (
	"math"
	"testing"
)

func TestViewportResizeLetterbox(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		expected Area
	}{
		{"wide screen pads left and right", 100, 15, Area{X: 25, Y: 0, W: 50, H: 15}},
		{"tall screen pads top and bottom", 50, 40, Area{X: 0, Y: 12, W: 50, H: 15}},
		{"exact fit", 100, 30, Area{X: 0, Y: 0, W: 100, H: 30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(800, 480)
			v.Resize(tc.w, tc.h)
			if got := v.Bounds(); got != tc.expected {
				t.Errorf("Bounds() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestViewportProjectFlipsY(t *testing.T) {
	v := NewViewport(800, 480)
	v.Resize(100, 15)

	bottomLeft := v.Project(NewRect(0, 0, 32, 32))
	if bottomLeft != (Area{X: 25, Y: 14, W: 2, H: 1}) {
		t.Errorf("Project(bottom-left tile) = %+v", bottomLeft)
	}

	topRight := v.Project(NewRect(768, 448, 32, 32))
	if topRight != (Area{X: 73, Y: 0, W: 2, H: 1}) {
		t.Errorf("Project(top-right tile) = %+v", topRight)
	}
}

func TestViewportProjectMinimumSize(t *testing.T) {
	v := NewViewport(800, 480)
	v.Resize(100, 15)

	a := v.Project(NewRect(100, 100, 1, 1))
	if a.W < 1 || a.H < 1 {
		t.Errorf("tiny rect should cover at least one cell, got %+v", a)
	}
}

func TestViewportUnprojectRoundTrip(t *testing.T) {
	v := NewViewport(800, 480)
	v.Resize(100, 15)

	x, y := v.Unproject(25, 14)
	if math.Abs(x-8) > 1e-9 || math.Abs(y-16) > 1e-9 {
		t.Errorf("Unproject(25, 14) = (%v, %v), expected (8, 16)", x, y)
	}

	col, row := v.ProjectPoint(x, y)
	if col != 25 || row != 14 {
		t.Errorf("ProjectPoint(%v, %v) = (%d, %d), expected (25, 14)", x, y, col, row)
	}
}

func TestViewportZeroSize(t *testing.T) {
	v := NewViewport(800, 480)
	v.Resize(0, 0)

	if v.Scale() != 0 {
		t.Errorf("Scale() = %v, expected 0", v.Scale())
	}
	if a := v.Project(NewRect(0, 0, 32, 32)); a != (Area{}) {
		t.Errorf("Project on empty viewport = %+v, expected zero area", a)
	}
}
