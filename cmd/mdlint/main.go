// Package main provides the entry point for the mdlint documentation linter.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdlint [root]",
	Short: "Validate the structure of markdown documentation",
	Long: "mdlint walks a documentation tree and checks every markdown file for front matter, " +
		"header hierarchy, whitespace, code fences, links, images, tables, callouts and secondary labels.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLint,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// the transcript already ends with the failure banner
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
