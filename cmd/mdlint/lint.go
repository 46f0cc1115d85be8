package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/docs-lint/internal/observability"
	"github.com/jonathan/docs-lint/internal/pipeline"
	"github.com/jonathan/docs-lint/internal/schemas"
	"github.com/jonathan/docs-lint/internal/types"
	"github.com/jonathan/docs-lint/internal/validation"
)

// errValidationFailed is returned when at least one file has an error-severity violation
var errValidationFailed = errors.New("markdown validation failed")

func init() {
	rootCmd.Flags().StringSliceVar(&lintOpts.requiredFields, "required-fields", nil, "Front matter fields every file must define (default title,description)")
	rootCmd.Flags().StringVar(&lintOpts.schema, "schema", "", "Path to JSON Schema applied to front matter (optional)")
	rootCmd.Flags().IntVarP(&lintOpts.jobs, "jobs", "j", 1, "Number of files validated concurrently")
	rootCmd.Flags().StringVarP(&lintOpts.out, "out", "o", "", "Path to output lint report JSON file (optional)")
	rootCmd.Flags().BoolVar(&lintOpts.summary, "summary", false, "Print a per-check summary table")
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	defer func() { _ = logger.Sync() }()
	logger.Debug("resolved configuration",
		zap.String("root", cfg.Root),
		zap.Strings("required_fields", cfg.RequiredFrontMatterFields),
		zap.Strings("excluded", cfg.ExcludedDirectories),
		zap.String("schema", cfg.FrontMatterSchema),
		zap.Int("jobs", cfg.Jobs))

	var frontMatterSchema *schemas.Schema
	if cfg.FrontMatterSchema != "" {
		frontMatterSchema, err = schemas.LoadSchema(cfg.FrontMatterSchema)
		if err != nil {
			return fmt.Errorf("failed to load front matter schema: %w", err)
		}
	}

	printer := observability.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		Root:     cfg.Root,
		Excluded: cfg.ExcludedDirectories,
		Context: &validation.Context{
			RepoRoot:                  cfg.Root,
			RequiredFrontMatterFields: cfg.RequiredFrontMatterFields,
			FrontMatterSchema:         frontMatterSchema,
		},
		Jobs:   cfg.Jobs,
		Logger: logger,
		OnProgress: func(event pipeline.ProgressEvent) {
			switch event.Step {
			case pipeline.StepDiscovered:
				printer.PrintFound(len(event.Content.([]string)))
			case pipeline.StepValidated:
				report := event.Content.(types.FileReport)
				printer.PrintValidating(report.File)
				printer.PrintFileReport(report)
			}
		},
	})
	if err != nil {
		return err
	}

	if cfg.Report != "" {
		if err := writeReport(cmd, result, cfg.Report); err != nil {
			return err
		}
		logger.Debug("wrote lint report", zap.String("path", cfg.Report))
	}

	if cfg.Summary {
		printer.PrintSummary(result)
	}
	printer.PrintResult(result)

	if !result.Valid() {
		return errValidationFailed
	}
	return nil
}

// writeReport serialises the run to path and checks it against the report schema
func writeReport(cmd *cobra.Command, result *types.RunResult, path string) error {
	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(types.NewReport(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal lint report to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write lint report: %w", err)
	}

	// Validate output against schema (non-fatal)
	schemaPath := schemas.ResolveSchemaPath("schemas/lint_report.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			if errors.As(err, &validationErr) {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Generated report does not validate against schema: %v\n", err)
			} else if errors.As(err, &schemaLoadErr) {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate report against schema (schema loading failed): %v\n", err)
			} else {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate report against schema: %v\n", err)
			}
		}
	}

	return nil
}
