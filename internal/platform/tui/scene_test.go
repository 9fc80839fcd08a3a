package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/giftrun/internal/core"
	"github.com/vovakirdan/giftrun/internal/games/giftrun"
)

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		key   string
		rune  rune
		color core.Color
	}{
		{"tile_solid", '▓', core.ColorWhite},
		{"tile_ladder", 'H', core.ColorBrown},
		{"player_idle", '@', core.ColorBrightYellow},
		{"reindeer_1", 'y', core.ColorOrange},
		{"snowman", '8', core.ColorBrightWhite},
		{"gift_0", '■', core.Palette[0]},
		{"gift_3", '■', core.Palette[3]},
		{"gift_9", '■', core.Palette[9%len(core.Palette)]},
		{"tree_0", '♣', core.ColorGreen},
		{"tree_1", '♣', core.ColorBrightGreen},
		{"gift_x", '■', core.ColorBrightRed},
		{"bogus", '?', core.ColorGray},
		{"bogus_key", '?', core.ColorGray},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			g := glyphFor(tt.key)
			assert.Equal(t, tt.rune, g.Rune)
			assert.Equal(t, tt.color, g.Color)
		})
	}
}

func testViewport() *core.Viewport {
	vp := core.NewViewport(800, 480)
	vp.Resize(100, 15)
	return vp
}

func TestDrawScene(t *testing.T) {
	vp := testViewport()
	s := core.NewScreen(100, 15)

	sc := giftrun.Scene{
		Tiles: []giftrun.Tile{
			{Key: "tile_solid", Rect: core.NewRect(0, 0, 32, 32)},
			{Key: "tile_ladder", Rect: core.NewRect(768, 448, 32, 32)},
		},
		Sprites: []giftrun.Sprite{
			{ID: 1, Kind: giftrun.KindPlayer, Key: "player_run_0", Rect: core.NewRect(32, 0, 32, 32), Mirror: true},
			{ID: 2, Kind: giftrun.KindReindeer, Key: "reindeer_0", Rect: core.NewRect(64, 0, 32, 32), Mirror: true},
		},
	}
	DrawScene(s, vp, sc)

	assert.Equal(t, core.Cell{Rune: '▓', Color: core.ColorWhite}, s.GetCell(25, 14))
	assert.Equal(t, '▓', s.Get(26, 14))
	assert.Equal(t, core.Cell{Rune: 'H', Color: core.ColorBrown}, s.GetCell(73, 0))
	// Mirrored runner flips; glyphs without a mirror stay.
	assert.Equal(t, '<', s.Get(27, 14))
	assert.Equal(t, 'Y', s.Get(29, 14))
	assert.Equal(t, ' ', s.Get(0, 14))
}

func TestDrawSceneLaterSpritesWin(t *testing.T) {
	vp := testViewport()
	s := core.NewScreen(100, 15)
	r := core.NewRect(0, 0, 32, 32)
	DrawScene(s, vp, giftrun.Scene{Sprites: []giftrun.Sprite{
		{Kind: giftrun.KindGift, Key: "gift_0", Rect: r},
		{Kind: giftrun.KindPlayer, Key: "player_idle", Rect: r},
	}})
	assert.Equal(t, '@', s.Get(25, 14))
}

func TestDrawFrame(t *testing.T) {
	vp := testViewport()
	s := core.NewScreen(100, 15)
	DrawFrame(s, vp)

	for y := 0; y < 15; y++ {
		assert.Equal(t, '│', s.Get(24, y))
		assert.Equal(t, '│', s.Get(75, y))
	}

	full := core.NewViewport(800, 480)
	full.Resize(50, 15)
	s = core.NewScreen(50, 15)
	DrawFrame(s, full)
	assert.Equal(t, strings.Repeat(" ", 50), s.Row(0))
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBrown)
	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
}
