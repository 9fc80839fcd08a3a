package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/giftrun/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration giftrun would use, as YAML.

Search order: --config, ~/.giftrun/config.yaml, ./configs/giftrun.yaml,
then the built-in defaults.

Examples:
  giftrun config
  giftrun config --defaults > ~/.giftrun/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	data, err := config.Marshal(loadConfig())
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
