package tui

import (
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/giftrun/internal/config"
	"github.com/vovakirdan/giftrun/internal/core"
	"github.com/vovakirdan/giftrun/internal/games/giftrun"
	"github.com/vovakirdan/giftrun/internal/storage"
)

// chromeRows is the number of terminal rows used by the HUD and help line.
const chromeRows = 2

// Options configures the play screen.
type Options struct {
	Store  *storage.Store // may be nil; runs are then not saved
	Logger *log.Logger
	Hold   time.Duration    // how long a key press counts as held
	Now    func() time.Time // defaults to time.Now
}

// Model is the Bubble Tea model for a giftrun session.
type Model struct {
	game    *giftrun.Game
	screen  *core.Screen
	store   *storage.Store
	rt      core.RuntimeConfig
	lives   int
	log     *log.Logger
	now     func() time.Time
	input   *HeldInput
	keys    KeyMap
	help    help.Model
	effects *Effects
	hud     *HUD

	fixedSeed bool
	runID     string
	played    time.Duration
	lastTick  time.Time
	paused    bool
	saved     bool
	quitting  bool
}

// NewModel builds the game and generates the first level.
func NewModel(cfg config.GameConfig, rt core.RuntimeConfig, opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Hold <= 0 {
		opts.Hold = time.Duration(cfg.Input.HoldMS) * time.Millisecond
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	fixedSeed := rt.Seed != 0
	if !fixedSeed {
		rt.Seed = opts.Now().UnixNano()
	}

	hud := NewHUD(opts.Now)
	game := giftrun.New(cfg,
		giftrun.WithLogger(opts.Logger),
		giftrun.WithHooks(hud),
		giftrun.WithNow(opts.Now),
	)

	playH := max(rt.ScreenH-chromeRows, 1)
	m := Model{
		game:      game,
		screen:    core.NewScreen(rt.ScreenW, playH),
		store:     opts.Store,
		rt:        rt,
		lives:     cfg.Rules.Lives,
		log:       opts.Logger,
		now:       opts.Now,
		input:     NewHeldInput(opts.Hold),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		effects:   NewEffects(rand.New(rand.NewSource(rt.Seed))),
		hud:       hud,
		fixedSeed: fixedSeed,
	}
	m.help.Width = rt.ScreenW

	if m.store != nil {
		if best, err := m.store.HighScore(); err != nil {
			m.log.Warn("cannot read high score", "err", err)
		} else {
			hud.Best = best
		}
	}

	if err := m.start(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// start resets the game with the current runtime config.
func (m *Model) start() error {
	rt := m.rt
	rt.ScreenH = m.screen.Height()
	if err := m.game.Reset(rt); err != nil {
		return err
	}
	m.hud.Reset(m.lives)
	m.effects.Clear()
	m.effects.SyncTrees(m.game.Scene().Sprites)
	m.input.Release()
	m.runID = uuid.NewString()
	m.played = 0
	m.lastTick = time.Time{}
	m.paused = false
	m.saved = false
	m.log.Debug("session started", "run", m.runID, "seed", m.rt.Seed)
	return nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.saveRun()
		if !m.fixedSeed {
			m.rt.Seed = now.UnixNano()
		}
		if err := m.start(); err != nil {
			m.log.Error("cannot restart", "err", err)
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if m.game.State().GameOver {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			m.game.Pause()
			m.input.Release()
		} else {
			m.game.Resume(now)
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.input.Press(ControlLeft, now)
	case key.Matches(msg, m.keys.Right):
		m.input.Press(ControlRight, now)
	case key.Matches(msg, m.keys.Up):
		m.input.Press(ControlUp, now)
	case key.Matches(msg, m.keys.Down):
		m.input.Press(ControlDown, now)
	case key.Matches(msg, m.keys.Jump):
		m.input.Press(ControlJump, now)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rt.ScreenW = msg.Width
	m.rt.ScreenH = msg.Height
	playH := max(msg.Height-chromeRows, 1)
	m.screen.Resize(msg.Width, playH)
	m.game.Resize(msg.Width, playH)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.paused {
		return m, tickCmd(m.rt.TickRate)
	}

	if m.game.Running() {
		m.played += dt
	}
	m.input.At(now)
	res := m.game.Advance(now, m.input)
	m.applyEvents(res.Events)

	m.hud.Level = res.State.Level
	m.effects.Update(dt.Seconds())

	if res.State.GameOver {
		m.saveRun()
	}
	return m, tickCmd(m.rt.TickRate)
}

func (m *Model) applyEvents(events []giftrun.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case giftrun.EventGiftCollected:
			m.effects.Burst(ev.Pos)
		case giftrun.EventPlayerHit:
			m.input.Release()
		case giftrun.EventLevelGenerated:
			m.effects.SyncTrees(m.game.Scene().Sprites)
			m.log.Debug("new level", "level", ev.Level, "trees", len(ev.Trees))
		case giftrun.EventGameOver:
			m.log.Info("game over", "run", m.runID, "score", m.game.State().Score)
		}
	}
}

// saveRun stores the current run once. Runs without points are skipped.
func (m *Model) saveRun() {
	if m.saved {
		return
	}
	state := m.game.State()
	if state.Score <= 0 {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}
	run, err := m.store.SaveRun(storage.Run{
		SessionID: m.runID,
		Score:     state.Score,
		Level:     state.Level,
		Seed:      m.rt.Seed,
		Duration:  m.played,
	})
	if err != nil {
		m.log.Error("cannot save run", "err", err)
		return
	}
	m.log.Info("run saved", "id", run.ID, "score", run.Score, "level", run.Level)
}

var helpLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the HUD, the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if vp := m.game.Viewport(); vp != nil {
		DrawFrame(m.screen, vp)
		DrawScene(m.screen, vp, m.game.Scene())
		m.effects.Draw(m.screen, vp)
	}

	mid := m.screen.Height() / 2
	switch {
	case m.game.State().GameOver:
		m.screen.DrawTextCentered(mid-1, " GAME OVER ")
		m.screen.DrawTextCentered(mid+1, " press r to play again ")
	case m.paused:
		m.screen.DrawTextCentered(mid, " PAUSED ")
	}

	var b strings.Builder
	b.WriteString(m.hud.Render(m.screen.Width()))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpLineStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run plays giftrun until the user quits.
func Run(cfg config.GameConfig, rt core.RuntimeConfig, opts Options) error {
	model, err := NewModel(cfg, rt, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
