package giftrun

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/giftrun/internal/config"
	"github.com/vovakirdan/giftrun/internal/core"
)

// Event describes something that happened during a step.
type Event interface {
	isEvent()
}

// EventGiftCollected is emitted when the player picks up a gift.
type EventGiftCollected struct {
	ID      int
	Pos     core.Rect
	Variant int
}

// EventPlayerHit is emitted when the player loses a life.
type EventPlayerHit struct {
	Lives int
}

// EventLevelCleared is emitted when the last gift is collected.
// Level is the number of the level just cleared.
type EventLevelCleared struct {
	Level int
}

// EventLevelGenerated is emitted after a new level is built.
type EventLevelGenerated struct {
	Level int
	Gifts int
	Trees []int // tree entity IDs
}

// EventGameOver is emitted once when the last life is lost.
type EventGameOver struct{}

func (EventGiftCollected) isEvent()  {}
func (EventPlayerHit) isEvent()      {}
func (EventLevelCleared) isEvent()   {}
func (EventLevelGenerated) isEvent() {}
func (EventGameOver) isEvent()       {}

// Outcome is the result of resolving one step's contacts.
type Outcome struct {
	Events   []Event
	GameOver bool
	Cleared  bool
}

// Scoring applies pickups, damage and level-clear rules to a session.
type Scoring struct {
	rules config.RulesConfig
	tile  float64
	hooks Hooks
	log   *log.Logger
}

// NewScoring creates the scoring system.
func NewScoring(cfg config.GameConfig, hooks Hooks, logger *log.Logger) *Scoring {
	return &Scoring{rules: cfg.Rules, tile: cfg.World.TileSize, hooks: hooks, log: logger}
}

// Resolve checks every non-player entity against the player.
// fellOut reports that the player dropped below the world this step.
func (s *Scoring) Resolve(store *Store, sess *Session, fellOut bool) Outcome {
	var out Outcome
	player := store.Player()
	if player == nil {
		return out
	}

	if fellOut {
		s.log.Info("player fell out of the world")
		if s.hit(player, sess, &out) {
			return out
		}
	}

	for _, id := range store.IDs() {
		e := store.Get(id)
		if e == nil || e == player {
			continue
		}
		if !e.Rect.Intersects(player.Rect) {
			continue
		}

		switch {
		case e.Kind == KindGift:
			sess.Score += s.rules.GiftPoints
			s.hooks.OnScore(sess.Score)
			out.Events = append(out.Events, EventGiftCollected{ID: e.ID, Pos: e.Rect, Variant: e.Variant})
			store.Remove(e.ID)
		case e.Kind.IsEnemy():
			s.log.Info("player hit", "by", e.Kind, "id", e.ID)
			if s.hit(player, sess, &out) {
				return out
			}
		}
	}

	if store.Count(KindGift) == 0 && store.Len() > 0 {
		sess.Score += s.rules.ClearBonus
		s.hooks.OnScore(sess.Score)
		out.Events = append(out.Events, EventLevelCleared{Level: sess.Level})
		s.log.Info("level cleared", "level", sess.Level, "score", sess.Score)
		sess.Level++
		out.Cleared = true
	}
	return out
}

// hit takes a life and either respawns the player or ends the game.
// It returns true when the game is over.
func (s *Scoring) hit(player *Entity, sess *Session, out *Outcome) bool {
	sess.Lives--
	s.hooks.OnLives(sess.Lives)
	out.Events = append(out.Events, EventPlayerHit{Lives: sess.Lives})

	if sess.Lives <= 0 {
		out.GameOver = true
		out.Events = append(out.Events, EventGameOver{})
		s.log.Info("game over", "score", sess.Score, "level", sess.Level)
		s.hooks.OnGameOver()
		return true
	}

	player.Rect.X = float64(s.rules.RespawnCol) * s.tile
	player.Rect.Y = float64(s.rules.RespawnRow) * s.tile
	player.VX, player.VY = 0, 0
	player.Grounded = false
	player.OnLadder = false
	return false
}
