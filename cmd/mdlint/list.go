package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/docs-lint/internal/pipeline"
)

var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "List the markdown files that would be validated",
	Long:  "Walks the documentation tree with the same exclusions as a lint run and prints one path per line.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	files, err := pipeline.DiscoverFiles(cfg.Root, cfg.ExcludedDirectories)
	if err != nil {
		return err
	}

	for _, f := range files {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
