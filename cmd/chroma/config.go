package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chroma-cascade/internal/config"
	"github.com/vovakirdan/chroma-cascade/internal/games/cascade"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the configuration a new game would use, after the config search
path and --difficulty are applied.

Search order:
  --config <path>
  ~/.chroma/configs/cascade.yaml
  ./configs/cascade.yaml
  built-in defaults

Examples:
  chroma config
  chroma config --difficulty fixed
  chroma config --default > ~/.chroma/configs/cascade.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default file instead")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefault {
		_, err := out.Write(config.GetDefaultYAML(cascade.IDClassic))
		return err
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadCascade(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyCascadePreset(&cfg, preset)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
