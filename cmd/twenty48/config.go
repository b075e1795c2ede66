package main

import (
	"os"

	"github.com/spf13/cobra"

	"twenty48/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Prints the default game configuration as YAML.

Redirect it to a file to start a custom config:

  twenty48 config > my-rules.yaml
  twenty48 play --config my-rules.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	os.Stdout.Write(config.DefaultYAML())
}
