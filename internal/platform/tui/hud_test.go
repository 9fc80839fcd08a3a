package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/giftrun/internal/games/giftrun"
)

func TestHUDTracksHooks(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHUD(func() time.Time { return now })
	h.Reset(3)

	h.OnScore(100)
	h.OnLives(2)
	assert.Equal(t, 100, h.Score)
	assert.Equal(t, 100, h.Best)
	assert.Equal(t, 2, h.Lives)
	assert.True(t, h.flashing(h.scoredAt))

	now = now.Add(time.Second)
	assert.False(t, h.flashing(h.scoredAt))

	out := h.Render(80)
	assert.Contains(t, out, "000100")
	assert.Contains(t, out, "♥♥")
	assert.NotContains(t, out, "GAME OVER")

	h.OnGameOver()
	assert.Contains(t, h.Render(80), "GAME OVER")
}

func TestHUDResetKeepsBest(t *testing.T) {
	h := NewHUD(nil)
	h.Best = 500
	h.OnScore(200)
	h.OnGameOver()

	h.Reset(3)
	assert.Equal(t, 0, h.Score)
	assert.Equal(t, 3, h.Lives)
	assert.Equal(t, 1, h.Level)
	assert.Equal(t, 500, h.Best)
	assert.False(t, h.GameOver)
}

func TestHUDNoLivesLeft(t *testing.T) {
	h := NewHUD(nil)
	h.OnLives(0)
	assert.Contains(t, h.Render(0), "LIVES")
	assert.NotContains(t, h.Render(0), "♥")
}

var _ giftrun.Hooks = (*HUD)(nil)
