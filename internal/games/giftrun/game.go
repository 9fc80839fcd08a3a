// Package giftrun implements a tile-based platformer simulation: a player
// collects gifts across ladder-linked floors while reindeer and snowmen
// patrol and chase. The package has no terminal dependencies; a host drives
// it with Advance or Update and draws the Scene.
package giftrun

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/giftrun/internal/config"
	"github.com/vovakirdan/giftrun/internal/core"
)

// StepResult is returned by every simulation step.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithHooks sets the score, lives and game-over callbacks.
func WithHooks(h Hooks) Option {
	return func(g *Game) {
		if h != nil {
			g.hooks = h
		}
	}
}

// WithRand uses r for all level generation instead of seeding from the
// runtime config on every Reset.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithTemplate replaces the level layout.
func WithTemplate(lines []string) Option {
	return func(g *Game) {
		g.template = lines
	}
}

// WithNow sets the time source used when the clock is (re)started by Reset.
func WithNow(now func() time.Time) Option {
	return func(g *Game) {
		if now != nil {
			g.now = now
		}
	}
}

// Game is the simulation facade: entity store, generator, controller,
// scoring and clock wired together.
type Game struct {
	cfg      config.GameConfig
	template []string
	log      *log.Logger
	hooks    Hooks
	rng      *rand.Rand
	now      func() time.Time

	runtime  core.RuntimeConfig
	store    *Store
	gen      *Generator
	control  Controller
	scoring  *Scoring
	clock    *Clock
	bounds   Bounds
	viewport *core.Viewport
	session  Session
	over     bool
}

// New creates a game. Reset must be called before the first step.
func New(cfg config.GameConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		template: DefaultTemplate,
		log:      log.New(io.Discard),
		hooks:    HookFuncs{},
		now:      time.Now,
		store:    NewStore(),
		control:  NewController(cfg),
		clock:    NewClock(cfg.Physics.MaxDelta),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.scoring = NewScoring(cfg, g.hooks, g.log)
	return g
}

// Reset restarts the run: score and lives return to their initial values,
// a fresh level is generated and the clock starts.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	g.runtime = rt

	grid, err := ParseTemplate(g.template)
	if err != nil {
		return fmt.Errorf("giftrun: cannot build level: %w", err)
	}

	rng := g.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(rt.Seed))
	}
	gen, err := NewGenerator(grid, g.cfg, rng, g.log)
	if err != nil {
		return fmt.Errorf("giftrun: cannot build level: %w", err)
	}
	g.gen = gen

	tile := g.cfg.World.TileSize
	g.bounds = Bounds{W: float64(grid.W) * tile, H: float64(grid.H) * tile}
	g.viewport = core.NewViewport(g.bounds.W, g.bounds.H)
	g.viewport.Resize(rt.ScreenW, rt.ScreenH)

	g.session = NewSession(g.cfg.Rules.Lives)
	g.over = false
	summary := g.gen.Populate(g.store)
	g.clock.Start(g.now())

	g.log.Info("run started", "seed", rt.Seed, "gifts", summary.Gifts, "trees", summary.Trees)
	return nil
}

// Advance steps the simulation by the wall-clock time since the previous
// call. Nothing happens while the clock is stopped.
func (g *Game) Advance(now time.Time, in core.InputSource) StepResult {
	dt, ok := g.clock.Tick(now)
	if !ok {
		return StepResult{State: g.State()}
	}
	return g.Update(dt, in)
}

// Update runs one simulation step of dt seconds. It does nothing after
// game over until the next Reset.
func (g *Game) Update(dt float64, in core.InputSource) StepResult {
	player := g.store.Player()
	if g.over || player == nil {
		return StepResult{State: g.State()}
	}
	if in == nil {
		in = core.NoInput
	}
	dt = core.ClampF(dt, 0, g.cfg.Physics.MaxDelta)
	entities := g.store.Entities()

	// Behavior
	for _, e := range entities {
		switch {
		case e.Kind == KindPlayer:
			g.control.Player(e, in, g.store.Ladders, dt)
		case e.Kind.IsEnemy():
			g.control.Enemy(e, player, dt)
		}
	}

	// Physics
	fellOut := false
	for _, e := range entities {
		if !e.Kind.Simulated() {
			continue
		}
		Integrate(e, dt, g.store.Solids)
		if g.bounds.Clamp(e) {
			if e.Kind == KindPlayer {
				fellOut = true
			} else {
				g.bounds.Wrap(e)
			}
		}
		g.control.AfterMove(e)
		animate(e, dt)
	}

	// Interaction
	out := g.scoring.Resolve(g.store, &g.session, fellOut)
	events := out.Events
	switch {
	case out.GameOver:
		g.over = true
		g.clock.Stop()
	case out.Cleared:
		events = append(events, g.regenerate())
	}

	return StepResult{State: g.State(), Events: events}
}

// regenerate replaces the level after a clear. Score and lives carry over.
func (g *Game) regenerate() EventLevelGenerated {
	summary := g.gen.Populate(g.store)
	ev := EventLevelGenerated{Level: g.session.Level, Gifts: summary.Gifts}
	for _, e := range g.store.Entities() {
		if e.Kind == KindTree {
			ev.Trees = append(ev.Trees, e.ID)
		}
	}
	g.log.Info("level generated", "level", g.session.Level, "gifts", summary.Gifts, "trees", summary.Trees)
	return ev
}

// Pause stops the clock without ending the run.
func (g *Game) Pause() {
	g.clock.Stop()
}

// Resume restarts the clock from now. It has no effect after game over.
func (g *Game) Resume(now time.Time) {
	if !g.over {
		g.clock.Start(now)
	}
}

// Running reports whether the clock is advancing.
func (g *Game) Running() bool {
	return g.clock.Running()
}

// State returns the current score, lives, level and game-over flag.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Lives:    g.session.Lives,
		Level:    g.session.Level,
		GameOver: g.over,
	}
}

// Session returns a copy of the session counters.
func (g *Game) Session() Session {
	return g.session
}

// Bounds returns the world size in world units.
func (g *Game) Bounds() Bounds {
	return g.bounds
}

// Resize recomputes the viewport for a new screen size.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	if g.viewport != nil {
		g.viewport.Resize(width, height)
	}
}

// Viewport returns the world-to-screen projection, or nil before Reset.
func (g *Game) Viewport() *core.Viewport {
	return g.viewport
}

// Sprite is one entity as the renderer sees it.
type Sprite struct {
	ID     int
	Kind   Kind
	Key    string
	Rect   core.Rect
	Mirror bool
}

// Tile is one piece of static level geometry.
type Tile struct {
	Key  string
	Rect core.Rect
}

// Scene is everything the renderer needs to draw a frame.
type Scene struct {
	Bounds  Bounds
	Tiles   []Tile
	Sprites []Sprite // back to front
}

// Scene snapshots the current level for drawing.
func (g *Game) Scene() Scene {
	sc := Scene{
		Bounds:  g.bounds,
		Tiles:   make([]Tile, 0, len(g.store.Ladders)+len(g.store.Solids)),
		Sprites: make([]Sprite, 0, g.store.Len()),
	}
	for _, r := range g.store.Ladders {
		sc.Tiles = append(sc.Tiles, Tile{Key: "tile_ladder", Rect: r})
	}
	for _, r := range g.store.Solids {
		sc.Tiles = append(sc.Tiles, Tile{Key: "tile_solid", Rect: r})
	}
	for _, e := range g.store.Entities() {
		sc.Sprites = append(sc.Sprites, Sprite{
			ID:     e.ID,
			Kind:   e.Kind,
			Key:    SpriteKey(e),
			Rect:   e.Rect,
			Mirror: Mirrored(e),
		})
	}
	slices.SortStableFunc(sc.Sprites, func(a, b Sprite) int {
		return drawLayer(a.Kind) - drawLayer(b.Kind)
	})
	return sc
}

func drawLayer(k Kind) int {
	switch k {
	case KindTree:
		return 0
	case KindGift:
		return 1
	case KindPlayer:
		return 3
	default:
		return 2
	}
}
