package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const hudFlash = 400 * time.Millisecond

var (
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudFlashStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hudHurtStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hudOverStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// HUD tracks the numbers shown above the playfield. It receives the
// simulation's score, lives and game-over notifications.
type HUD struct {
	now func() time.Time

	Score    int
	Lives    int
	Level    int
	Best     int
	GameOver bool

	scoredAt time.Time
	hurtAt   time.Time
}

// NewHUD creates a HUD that uses now for flash timing.
func NewHUD(now func() time.Time) *HUD {
	if now == nil {
		now = time.Now
	}
	return &HUD{now: now, Level: 1}
}

// OnScore implements giftrun.Hooks.
func (h *HUD) OnScore(total int) {
	h.Score = total
	h.scoredAt = h.now()
	if total > h.Best {
		h.Best = total
	}
}

// OnLives implements giftrun.Hooks.
func (h *HUD) OnLives(remaining int) {
	h.Lives = remaining
	h.hurtAt = h.now()
}

// OnGameOver implements giftrun.Hooks.
func (h *HUD) OnGameOver() {
	h.GameOver = true
}

// Reset clears per-run state and keeps the best score.
func (h *HUD) Reset(lives int) {
	h.Score = 0
	h.Lives = lives
	h.Level = 1
	h.GameOver = false
	h.scoredAt = time.Time{}
	h.hurtAt = time.Time{}
}

func (h *HUD) flashing(at time.Time) bool {
	return !at.IsZero() && h.now().Sub(at) < hudFlash
}

// Render returns the status line.
func (h *HUD) Render(width int) string {
	score := fmt.Sprintf("%06d", h.Score)
	if h.flashing(h.scoredAt) {
		score = hudFlashStyle.Render(score)
	} else {
		score = hudStyle.Render(score)
	}

	hearts := strings.Repeat("♥", max(h.Lives, 0))
	if hearts == "" {
		hearts = "-"
	}
	if h.flashing(h.hurtAt) {
		hearts = hudHurtStyle.Render(hearts)
	} else {
		hearts = hudStyle.Render(hearts)
	}

	parts := []string{
		hudLabelStyle.Render("SCORE ") + score,
		hudLabelStyle.Render("LIVES ") + hearts,
		hudLabelStyle.Render("LEVEL ") + hudStyle.Render(fmt.Sprint(h.Level)),
		hudLabelStyle.Render("BEST ") + hudStyle.Render(fmt.Sprint(h.Best)),
	}
	if h.GameOver {
		parts = append(parts, hudOverStyle.Render("GAME OVER"))
	}
	line := strings.Join(parts, "   ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
