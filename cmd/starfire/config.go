package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-fire/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration Star Fire would run with, as YAML.

The file is looked up in this order: --config, ~/.starfire/configs/starfire.yaml,
./configs/starfire.yaml, then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadStarfire(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
