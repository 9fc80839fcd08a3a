package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/giftrun/internal/core"
	"github.com/vovakirdan/giftrun/internal/games/giftrun"
	"github.com/vovakirdan/giftrun/internal/platform/tui"
)

var flagNoColor bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a generated level",
	Long: `Generate the level for a seed and print it without starting a run.
The same seed always produces the same level.

Examples:
  giftrun preview
  giftrun preview --seed 42
  giftrun preview --seed 42 --no-color`,
	Args: cobra.NoArgs,
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Print without colors")
}

// previewStyles maps screen colors to terminal styles.
var previewStyles = map[core.Color]color.Style{
	core.ColorDefault:       {color.FgDefault},
	core.ColorRed:           {color.FgRed},
	core.ColorGreen:         {color.FgGreen},
	core.ColorYellow:        {color.FgYellow},
	core.ColorBlue:          {color.FgBlue},
	core.ColorMagenta:       {color.FgMagenta},
	core.ColorCyan:          {color.FgCyan},
	core.ColorWhite:         {color.FgWhite},
	core.ColorBrightRed:     {color.FgLightRed, color.OpBold},
	core.ColorBrightGreen:   {color.FgLightGreen, color.OpBold},
	core.ColorBrightYellow:  {color.FgLightYellow, color.OpBold},
	core.ColorBrightBlue:    {color.FgLightBlue, color.OpBold},
	core.ColorBrightMagenta: {color.FgLightMagenta, color.OpBold},
	core.ColorBrightCyan:    {color.FgLightCyan, color.OpBold},
	core.ColorBrightWhite:   {color.FgLightWhite, color.OpBold},
	core.ColorOrange:        {color.FgYellow, color.OpBold},
	core.ColorGray:          {color.FgGray},
	core.ColorBrown:         {color.FgYellow},
}

func runPreview(_ *cobra.Command, _ []string) {
	if flagNoColor {
		color.Enable = false
	}

	cfg := loadConfig()
	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := giftrun.New(cfg, giftrun.WithLogger(logger))
	grid, err := giftrun.ParseTemplate(giftrun.DefaultTemplate)
	if err != nil {
		fail("%v", err)
	}
	// Two columns per tile keeps the level's proportions in a terminal.
	rt := core.RuntimeConfig{ScreenW: grid.W * 2, ScreenH: grid.H, TickRate: flagFPS, Seed: seed}
	if err := game.Reset(rt); err != nil {
		closeLog()
		fail("%v", err)
	}

	scene := game.Scene()
	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	tui.DrawScene(screen, game.Viewport(), scene)

	fmt.Println(renderPreview(screen))
	fmt.Println()

	gifts, trees, enemies := 0, 0, 0
	for _, s := range scene.Sprites {
		switch {
		case s.Kind == giftrun.KindGift:
			gifts++
		case s.Kind == giftrun.KindTree:
			trees++
		case s.Kind.IsEnemy():
			enemies++
		}
	}
	color.Style{color.FgGray}.Printf("seed %d   gifts %d   trees %d   enemies %d\n", seed, gifts, trees, enemies)
}

// renderPreview converts the screen to colored text, one style per run of
// same-colored cells.
func renderPreview(s *core.Screen) string {
	var sb strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < s.Width() {
			c := s.GetCell(x, y).Color
			var run strings.Builder
			for x < s.Width() && s.GetCell(x, y).Color == c {
				run.WriteRune(s.GetCell(x, y).Rune)
				x++
			}
			style, ok := previewStyles[c]
			if !ok {
				style = previewStyles[core.ColorDefault]
			}
			sb.WriteString(style.Sprint(run.String()))
		}
	}
	return sb.String()
}
