// Package main provides the entry point for the cvgen CLI, which builds
// localized LaTeX résumés from a single YAML document.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "cvgen",
	Short:         "Multilingual CV generator",
	Long:          "cvgen renders a YAML résumé into one LaTeX document per locale and typesets each into a PDF.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
