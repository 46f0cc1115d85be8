// Package main implements the mdlint CLI.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/docs-lint/internal/config"
)

// lintOptions holds the raw flag values shared by every command
type lintOptions struct {
	configPath     string
	requiredFields []string
	exclude        []string
	schema         string
	jobs           int
	out            string
	summary        bool
	verbose        bool
}

var lintOpts lintOptions

// resolveConfig layers built-in defaults, the optional config file, MDLINT_*
// environment variables and finally explicitly set flags.
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	opts := &lintOpts

	fileCfg := config.Config{}
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	merged := fileCfg.MergeWithDefaults(config.Defaults())
	cfg, err := merged.ApplyEnv(os.LookupEnv)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if flags.Changed("required-fields") {
		cfg.RequiredFrontMatterFields = config.SplitList(strings.Join(opts.requiredFields, ","))
	}
	if flags.Changed("exclude") {
		cfg.ExcludedDirectories = config.SplitList(strings.Join(opts.exclude, ","))
	}
	if flags.Changed("schema") {
		cfg.FrontMatterSchema = opts.schema
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	if flags.Changed("out") {
		cfg.Report = opts.out
	}
	// bools cannot be unset in the config file, so flags only switch them on
	cfg.Summary = cfg.Summary || opts.summary
	cfg.Verbose = cfg.Verbose || opts.verbose

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func init() {
	// Persistent so list honours the same discovery settings
	rootCmd.PersistentFlags().StringVarP(&lintOpts.configPath, "config", "c", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringSliceVar(&lintOpts.exclude, "exclude", nil, "Directory names to skip (default .git,node_modules,vendor)")
	rootCmd.PersistentFlags().BoolVarP(&lintOpts.verbose, "verbose", "v", false, "Print debug diagnostics to stderr")
}
