package tui

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/giftrun/internal/core"
	"github.com/vovakirdan/giftrun/internal/games/giftrun"
)

// glyph is how a sprite key is drawn in a terminal cell.
type glyph struct {
	Rune   rune
	Mirror rune // used when the sprite faces left; zero means same as Rune
	Color  core.Color
}

var glyphs = map[string]glyph{
	"tile_solid":     {Rune: '▓', Color: core.ColorWhite},
	"tile_ladder":    {Rune: 'H', Color: core.ColorBrown},
	"player_idle":    {Rune: '@', Color: core.ColorBrightYellow},
	"player_jump":    {Rune: '^', Color: core.ColorBrightYellow},
	"player_run_0":   {Rune: '>', Mirror: '<', Color: core.ColorBrightYellow},
	"player_run_1":   {Rune: '}', Mirror: '{', Color: core.ColorBrightYellow},
	"player_climb_0": {Rune: '╪', Color: core.ColorBrightYellow},
	"player_climb_1": {Rune: '╫', Color: core.ColorBrightYellow},
	"reindeer_0":     {Rune: 'Y', Color: core.ColorOrange},
	"reindeer_1":     {Rune: 'y', Color: core.ColorOrange},
	"snowman":        {Rune: '8', Color: core.ColorBrightWhite},
	"tree":           {Rune: '♣', Color: core.ColorGreen},
	"gift":           {Rune: '■', Color: core.ColorBrightRed},
	"unknown":        {Rune: '?', Color: core.ColorGray},
}

// glyphFor resolves a sprite key. Gift and tree variants share a glyph;
// gift variants pick their color from the palette.
func glyphFor(key string) glyph {
	if g, ok := glyphs[key]; ok {
		return g
	}
	prefix, suffix, found := strings.Cut(key, "_")
	if !found {
		return glyphs["unknown"]
	}
	switch prefix {
	case "gift":
		g := glyphs["gift"]
		if v := variantIndex(suffix); v >= 0 {
			g.Color = core.Palette[v%len(core.Palette)]
		}
		return g
	case "tree":
		g := glyphs["tree"]
		if variantIndex(suffix)%2 == 1 {
			g.Color = core.ColorBrightGreen
		}
		return g
	}
	return glyphs["unknown"]
}

func variantIndex(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// DrawScene draws level tiles then sprites, back to front.
func DrawScene(s *core.Screen, vp *core.Viewport, sc giftrun.Scene) {
	for _, t := range sc.Tiles {
		g := glyphFor(t.Key)
		s.DrawRect(vp.Project(t.Rect), g.Rune, g.Color)
	}
	for _, sp := range sc.Sprites {
		g := glyphFor(sp.Key)
		r := g.Rune
		if sp.Mirror && g.Mirror != 0 {
			r = g.Mirror
		}
		s.DrawRect(vp.Project(sp.Rect), r, g.Color)
	}
}

// DrawFrame draws side rails around a letterboxed playfield.
func DrawFrame(s *core.Screen, vp *core.Viewport) {
	b := vp.Bounds()
	if b.X < 1 {
		return
	}
	for y := b.Y; y < b.Y+b.H; y++ {
		s.SetColored(b.X-1, y, '│', core.ColorGray)
		s.SetColored(b.X+b.W, y, '│', core.ColorGray)
	}
}
