package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [preset]",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration a game would run with: the preset merged with
any override file on the search path (--config, ~/.arcade/configs/flappy-<preset>.yaml,
./configs/flappy-<preset>.yaml). The output is a valid override file.

Examples:
  flappy config
  flappy config boost
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	preset := flagPreset
	if len(args) == 1 {
		preset = args[0]
	}

	cfg, err := config.Load(preset, flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
