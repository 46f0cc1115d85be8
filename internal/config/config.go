// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variables consulted by ApplyEnv
const (
	EnvRoot           = "MDLINT_ROOT"
	EnvRequiredFields = "MDLINT_REQUIRED_FIELDS"
	EnvExclude        = "MDLINT_EXCLUDE"
	EnvSchema         = "MDLINT_SCHEMA"
	EnvJobs           = "MDLINT_JOBS"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Discovery
	Root                string   `json:"root,omitempty"`                                          // Directory to scan
	ExcludedDirectories []string `json:"excluded_directories,omitempty" validate:"dive,required"` // Directory names never descended into

	// Checks
	RequiredFrontMatterFields []string `json:"required_front_matter_fields,omitempty" validate:"dive,required"` // Keys every front-matter block must define
	FrontMatterSchema         string   `json:"front_matter_schema,omitempty"`                                   // Optional JSON Schema applied to front matter

	// Behavior
	Jobs    int    `json:"jobs,omitempty" validate:"gte=0,lte=64"` // Documents validated concurrently
	Report  string `json:"report,omitempty"`                       // Path of the JSON report to write
	Summary bool   `json:"summary,omitempty"`                      // Print the per-check summary table
	Verbose bool   `json:"verbose,omitempty"`                      // Print detailed debug information
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Root:                      ".",
		ExcludedDirectories:       []string{".git", "node_modules", "vendor"},
		RequiredFrontMatterFields: []string{"title", "description"},
		Jobs:                      1,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report JSON keys rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation", ve.Field(), ve.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Root != "" {
		info, err := os.Stat(c.Root)
		if err != nil {
			return fmt.Errorf("config error: root directory not found: %s", c.Root)
		}
		if !info.IsDir() {
			return fmt.Errorf("config error: root is not a directory: %s", c.Root)
		}
	}

	if c.FrontMatterSchema != "" {
		if _, err := os.Stat(c.FrontMatterSchema); os.IsNotExist(err) {
			return fmt.Errorf("config error: front matter schema not found: %s", c.FrontMatterSchema)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// A list set to an explicit empty array is kept, so a config file can turn
// off required fields or exclusions entirely.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Root == "" {
		result.Root = defaults.Root
	}
	if result.FrontMatterSchema == "" {
		result.FrontMatterSchema = defaults.FrontMatterSchema
	}
	if result.Report == "" {
		result.Report = defaults.Report
	}

	if result.ExcludedDirectories == nil {
		result.ExcludedDirectories = defaults.ExcludedDirectories
	}
	if result.RequiredFrontMatterFields == nil {
		result.RequiredFrontMatterFields = defaults.RequiredFrontMatterFields
	}

	if result.Jobs == 0 {
		result.Jobs = defaults.Jobs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv returns a copy of c with MDLINT_* environment overrides applied.
// lookup is normally os.LookupEnv. List variables are comma separated; a
// variable set to the empty string clears the list.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) (Config, error) {
	result := *c

	if v, ok := lookup(EnvRoot); ok && v != "" {
		result.Root = v
	}
	if v, ok := lookup(EnvRequiredFields); ok {
		result.RequiredFrontMatterFields = SplitList(v)
	}
	if v, ok := lookup(EnvExclude); ok {
		result.ExcludedDirectories = SplitList(v)
	}
	if v, ok := lookup(EnvSchema); ok && v != "" {
		result.FrontMatterSchema = v
	}
	if v, ok := lookup(EnvJobs); ok && v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return result, fmt.Errorf("config error: %s must be an integer, got %q", EnvJobs, v)
		}
		result.Jobs = jobs
	}

	return result, nil
}

// SplitList splits a comma-separated list, trimming entries and dropping empty ones.
// It never returns nil.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
