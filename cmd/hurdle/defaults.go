package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hurdle/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Print the built-in runner configuration as YAML.

Save it to ~/.hurdle/configs/runner.yaml or ./configs/runner.yaml and edit
it, or pass a copy with --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
