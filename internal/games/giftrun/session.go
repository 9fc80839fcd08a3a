package giftrun

// Session holds per-run counters. It is reset only by an explicit restart.
type Session struct {
	Score int
	Lives int
	Level int // 1-based
}

// NewSession starts a run with the given number of lives.
func NewSession(lives int) Session {
	return Session{Score: 0, Lives: lives, Level: 1}
}

// Hooks receives notifications from inside a simulation step.
type Hooks interface {
	OnScore(total int)
	OnLives(remaining int)
	OnGameOver()
}

// HookFuncs adapts plain functions to Hooks. Nil fields are skipped.
type HookFuncs struct {
	Score    func(total int)
	Lives    func(remaining int)
	GameOver func()
}

func (h HookFuncs) OnScore(total int) {
	if h.Score != nil {
		h.Score(total)
	}
}

func (h HookFuncs) OnLives(remaining int) {
	if h.Lives != nil {
		h.Lives(remaining)
	}
}

func (h HookFuncs) OnGameOver() {
	if h.GameOver != nil {
		h.GameOver()
	}
}
