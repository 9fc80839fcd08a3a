package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/giftrun/internal/core"
	"github.com/vovakirdan/giftrun/internal/storage"
)

// MenuChoice is what the user picked on the title screen.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

type menuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []menuItem{
	{MenuPlay, "Play"},
	{MenuScores, "High scores"},
	{MenuQuit, "Quit"},
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the title screen shown between runs.
type MenuModel struct {
	cursor int
	best   int
	config core.RuntimeConfig
	keys   menuKeyMap
	choice MenuChoice
}

// NewMenuModel creates a title screen. The best score is read from store
// when one is given.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{config: cfg, keys: defaultMenuKeyMap()}
	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.best = best
		}
	}
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.choice = menuItems[m.cursor].Choice
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  G I F T R U N  "), w))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("collect every gift, dodge the reindeer"), w))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.Title + "  "
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title + " <")
		}
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("best %d", m.best), w))
		b.WriteString("\n")
	}
	b.WriteString(centerText(menuDimStyle.Render("up/down: navigate  enter: select  tab: scores  q: quit"), w))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or MenuNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunMenu shows the title screen and returns the choice and the latest
// terminal size.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuChoice, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuQuit, cfg, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuQuit, cfg, nil
	}
	return m.Choice(), m.Config(), nil
}
