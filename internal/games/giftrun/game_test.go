package giftrun

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/giftrun/internal/config"
	"github.com/vovakirdan/giftrun/internal/core"
)

type hookRecorder struct {
	scores    []int
	lives     []int
	gameOvers int
}

func (h *hookRecorder) OnScore(total int)     { h.scores = append(h.scores, total) }
func (h *hookRecorder) OnLives(remaining int) { h.lives = append(h.lives, remaining) }
func (h *hookRecorder) OnGameOver()           { h.gameOvers++ }

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(config.DefaultConfig(), opts...)
	require.NoError(t, g.Reset(testRuntime))
	return g
}

func firstOf(g *Game, kind Kind) *Entity {
	for _, e := range g.store.Entities() {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t)

	state := g.State()
	assert.Equal(t, core.GameState{Score: 0, Lives: 3, Level: 1, GameOver: false}, state)
	assert.True(t, g.Running())
	assert.Equal(t, Bounds{W: 800, H: 480}, g.Bounds())

	player := g.store.Player()
	require.NotNil(t, player)
	assert.Equal(t, core.NewRect(68, 32, 24, 28), player.Rect)

	gifts := g.store.Count(KindGift)
	assert.GreaterOrEqual(t, gifts, 4)
	assert.LessOrEqual(t, gifts, 6)
}

func TestResetErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		err   error
	}{
		{"ragged", []string{"@  ", "##"}, ErrRaggedTemplate},
		{"no player", []string{"   ", "###"}, ErrNoPlayerSpawn},
		{"two players", []string{"@@ ", "###"}, ErrMultiplePlayerSpawns},
		{"no floor", []string{"@  ", "   "}, ErrNoReachableFloor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(config.DefaultConfig(), WithTemplate(tc.lines))
			err := g.Reset(testRuntime)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), "giftrun:")
		})
	}
}

func TestUpdateBeforeResetIsNoop(t *testing.T) {
	g := New(config.DefaultConfig())
	res := g.Update(0.1, nil)
	assert.Equal(t, core.GameState{}, res.State)
	assert.Empty(t, res.Events)
}

func TestPickupGift(t *testing.T) {
	hooks := &hookRecorder{}
	g := newTestGame(t, WithHooks(hooks))
	gift := firstOf(g, KindGift)
	require.NotNil(t, gift)
	giftsBefore := g.store.Count(KindGift)

	player := g.store.Player()
	player.Rect.X, player.Rect.Y = gift.Rect.X, gift.Rect.Y
	res := g.Update(0, core.NoInput)

	assert.Equal(t, 100, res.State.Score)
	assert.Nil(t, g.store.Get(gift.ID), "gift removed")
	assert.Equal(t, giftsBefore-1, g.store.Count(KindGift))
	assert.Equal(t, []int{100}, hooks.scores)
	require.Len(t, res.Events, 1)
	assert.Equal(t, EventGiftCollected{ID: gift.ID, Pos: gift.Rect, Variant: gift.Variant}, res.Events[0])
}

func TestEnemyContactEndToEnd(t *testing.T) {
	hooks := &hookRecorder{}
	g := newTestGame(t, WithHooks(hooks))
	player := g.store.Player()
	respawn := core.NewRect(384, 224, 24, 28)

	// collect a gift first
	gift := firstOf(g, KindGift)
	player.Rect.X, player.Rect.Y = gift.Rect.X, gift.Rect.Y
	res := g.Update(0, core.NoInput)
	require.Equal(t, 100, res.State.Score)
	require.Nil(t, g.store.Get(gift.ID))

	enemy := firstOf(g, KindReindeer)
	require.NotNil(t, enemy)

	for _, wantLives := range []int{2, 1} {
		player.Rect = enemy.Rect
		res = g.Update(0, core.NoInput)
		assert.Equal(t, wantLives, res.State.Lives)
		assert.False(t, res.State.GameOver)
		assert.Equal(t, respawn, player.Rect)
		assert.Equal(t, 0.0, player.VX)
		assert.Equal(t, 0.0, player.VY)
	}

	player.Rect = enemy.Rect
	res = g.Update(0, core.NoInput)
	assert.Equal(t, 0, res.State.Lives)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, enemy.Rect, player.Rect, "no respawn on the final hit")
	assert.Contains(t, res.Events, Event(EventGameOver{}))
	assert.False(t, g.Running(), "clock halted")

	// terminal: nothing moves any more
	frozen := player.Rect
	enemyBefore := enemy.Rect
	for i := 0; i < 5; i++ {
		res = g.Update(0.05, input(1, 0, true))
		assert.Empty(t, res.Events)
	}
	g.Advance(time.Now().Add(time.Second), input(1, 0, false))
	assert.Equal(t, frozen, player.Rect)
	assert.Equal(t, enemyBefore, enemy.Rect)

	assert.Equal(t, 1, hooks.gameOvers)
	assert.Equal(t, []int{2, 1, 0}, hooks.lives)
	assert.Equal(t, []int{100}, hooks.scores)
	assert.Equal(t, 100, g.State().Score)
}

func TestFallingOutOfWorld(t *testing.T) {
	g := newTestGame(t)
	player := g.store.Player()

	player.Rect.Y = -100
	res := g.Update(0.016, core.NoInput)

	assert.Equal(t, 2, res.State.Lives)
	assert.Equal(t, core.NewRect(384, 224, 24, 28), player.Rect)
	assert.Equal(t, 0.0, player.VX)
	assert.Equal(t, 0.0, player.VY)

	// last life
	g.session.Lives = 1
	player.Rect.Y = -100
	res = g.Update(0.016, core.NoInput)

	assert.Equal(t, 0, res.State.Lives)
	assert.True(t, res.State.GameOver)
	assert.Less(t, player.Rect.Y, 0.0, "not repositioned")
}

func TestEnemyWrapsWhenFallingOut(t *testing.T) {
	g := newTestGame(t)
	snowman := firstOf(g, KindSnowman)
	require.NotNil(t, snowman)

	snowman.Rect.Y = -50
	res := g.Update(0.016, core.NoInput)

	assert.Equal(t, 480.0, snowman.Rect.Y)
	assert.Equal(t, 3, res.State.Lives)
}

func TestLastGiftClearsLevel(t *testing.T) {
	hooks := &hookRecorder{}
	g := newTestGame(t, WithHooks(hooks))

	var last *Entity
	for _, id := range g.store.IDs() {
		e := g.store.Get(id)
		if e.Kind != KindGift {
			continue
		}
		if last == nil {
			last = e
			continue
		}
		g.store.Remove(id)
	}
	require.NotNil(t, last)
	require.Equal(t, 1, g.store.Count(KindGift))
	oldIDs := g.store.IDs()
	oldPlayer := g.store.Player()

	oldPlayer.Rect.X, oldPlayer.Rect.Y = last.Rect.X, last.Rect.Y
	res := g.Update(0, core.NoInput)

	assert.Equal(t, 1100, res.State.Score)
	assert.Equal(t, []int{100, 1100}, hooks.scores)
	assert.Equal(t, 2, res.State.Level)
	assert.Equal(t, 3, res.State.Lives)

	require.Len(t, res.Events, 3)
	assert.IsType(t, EventGiftCollected{}, res.Events[0])
	assert.Equal(t, EventLevelCleared{Level: 1}, res.Events[1])
	generated, ok := res.Events[2].(EventLevelGenerated)
	require.True(t, ok)
	assert.Equal(t, 2, generated.Level)
	assert.Len(t, generated.Trees, g.store.Count(KindTree))

	gifts := g.store.Count(KindGift)
	assert.GreaterOrEqual(t, gifts, 4)
	assert.LessOrEqual(t, gifts, 6)
	for _, id := range g.store.IDs() {
		assert.NotContains(t, oldIDs, id, "entities are recreated")
	}

	newPlayer := g.store.Player()
	require.NotNil(t, newPlayer)
	assert.NotSame(t, oldPlayer, newPlayer)
	assert.Equal(t, core.NewRect(68, 32, 24, 28), newPlayer.Rect)
}

func TestAdvanceClampsDelta(t *testing.T) {
	start := time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC)
	g := newTestGame(t, WithNow(func() time.Time { return start }))
	reindeer := firstOf(g, KindReindeer)
	x0 := reindeer.Rect.X

	// two seconds of lag are simulated as one 0.1s step of patrol at 80 u/s
	g.Advance(start.Add(2*time.Second), core.NoInput)
	assert.InDelta(t, x0+8, reindeer.Rect.X, 1e-9)
	assert.Equal(t, 32.0, reindeer.Rect.Y, "stays on the ground")
}

func TestPauseAndResume(t *testing.T) {
	start := time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC)
	g := newTestGame(t, WithNow(func() time.Time { return start }))
	reindeer := firstOf(g, KindReindeer)
	x0 := reindeer.Rect.X

	g.Pause()
	assert.False(t, g.Running())
	g.Advance(start.Add(50*time.Millisecond), core.NoInput)
	assert.Equal(t, x0, reindeer.Rect.X)

	resumed := start.Add(time.Minute)
	g.Resume(resumed)
	g.Advance(resumed.Add(50*time.Millisecond), core.NoInput)
	assert.InDelta(t, x0+4, reindeer.Rect.X, 1e-9)
}

func TestEnemyTurnsAtWorldEdge(t *testing.T) {
	g := newTestGame(t)
	reindeer := firstOf(g, KindReindeer)
	player := g.store.Player()

	// keep the player out of chase range
	player.Rect.X, player.Rect.Y = 300, 160
	reindeer.Rect.X = 1
	reindeer.Dir = -1

	g.Update(0.1, core.NoInput)

	assert.Equal(t, 0.0, reindeer.Rect.X)
	assert.Equal(t, 1, reindeer.Dir)
}

func TestPlayerWalksAndLands(t *testing.T) {
	g := newTestGame(t)
	player := g.store.Player()

	for i := 0; i < 5; i++ {
		g.Update(0.02, input(1, 0, false))
	}

	assert.InDelta(t, 68+200*0.1, player.Rect.X, 1e-9)
	assert.Equal(t, 32.0, player.Rect.Y)
	assert.True(t, player.Grounded)
	assert.Equal(t, AnimRun, player.Anim)
	assert.Equal(t, 1, player.Dir)
}

func TestResetRestartsRun(t *testing.T) {
	g := newTestGame(t)
	g.session = Session{Score: 2300, Lives: 1, Level: 3}
	g.over = true
	g.clock.Stop()

	require.NoError(t, g.Reset(testRuntime))

	assert.Equal(t, core.GameState{Score: 0, Lives: 3, Level: 1}, g.State())
	assert.True(t, g.Running())
}

func TestWithRandKeepsDrawingAcrossResets(t *testing.T) {
	g := newTestGame(t, WithRand(rand.New(rand.NewSource(9))))
	assert.NotNil(t, g.store.Player())
	require.NoError(t, g.Reset(testRuntime))
	assert.NotNil(t, g.store.Player())
}

func TestSameSeedSameScene(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)

	sa, sb := a.Scene(), b.Scene()
	require.Equal(t, len(sa.Sprites), len(sb.Sprites))
	for i := range sa.Sprites {
		assert.Equal(t, sa.Sprites[i].Key, sb.Sprites[i].Key)
		assert.Equal(t, sa.Sprites[i].Rect, sb.Sprites[i].Rect)
	}
}

func TestScene(t *testing.T) {
	g := newTestGame(t)
	sc := g.Scene()

	assert.Len(t, sc.Tiles, 71+15)
	assert.Equal(t, "tile_ladder", sc.Tiles[0].Key)
	assert.Equal(t, "tile_solid", sc.Tiles[len(sc.Tiles)-1].Key)

	require.Len(t, sc.Sprites, g.store.Len())
	last := sc.Sprites[len(sc.Sprites)-1]
	assert.Equal(t, KindPlayer, last.Kind, "player drawn on top")
	assert.Equal(t, "player_idle", last.Key)

	for i := 1; i < len(sc.Sprites); i++ {
		assert.LessOrEqual(t, drawLayer(sc.Sprites[i-1].Kind), drawLayer(sc.Sprites[i].Kind))
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	g := newTestGame(t)
	g.Resize(100, 15)

	assert.Equal(t, core.Area{X: 25, Y: 0, W: 50, H: 15}, g.Viewport().Bounds())
}
