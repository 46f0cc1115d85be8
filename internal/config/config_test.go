package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"root": "docs",
		"required_front_matter_fields": ["title", "slug"],
		"excluded_directories": ["drafts"],
		"jobs": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "docs", cfg.Root)
	assert.Equal(t, []string{"title", "slug"}, cfg.RequiredFrontMatterFields)
	assert.Equal(t, []string{"drafts"}, cfg.ExcludedDirectories)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Defaults(), ""},
		{"existing root and schema", Config{Root: dir, FrontMatterSchema: file, Jobs: 8}, ""},
		{"negative jobs", Config{Jobs: -1}, "jobs"},
		{"too many jobs", Config{Jobs: 65}, "jobs"},
		{"blank required field", Config{RequiredFrontMatterFields: []string{"title", ""}}, "required_front_matter_fields[1]"},
		{"blank excluded dir", Config{ExcludedDirectories: []string{""}}, "excluded_directories[0]"},
		{"missing root", Config{Root: filepath.Join(dir, "nope")}, "root directory not found"},
		{"root is a file", Config{Root: file}, "not a directory"},
		{"missing schema", Config{FrontMatterSchema: filepath.Join(dir, "nope.json")}, "front matter schema not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Root: "content",
		Jobs: 2,
	}

	merged := partial.MergeWithDefaults(Defaults())

	// Custom values should be preserved
	assert.Equal(t, "content", merged.Root)
	assert.Equal(t, 2, merged.Jobs)

	// Default values should fill in empty fields
	assert.Equal(t, []string{"title", "description"}, merged.RequiredFrontMatterFields)
	assert.Equal(t, []string{".git", "node_modules", "vendor"}, merged.ExcludedDirectories)
}

func TestMergeWithDefaults_ExplicitEmptyListKept(t *testing.T) {
	cfg := Config{RequiredFrontMatterFields: []string{}}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Empty(t, merged.RequiredFrontMatterFields)
	assert.NotNil(t, merged.RequiredFrontMatterFields)
	assert.Equal(t, 1, merged.Jobs)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Root: "docs"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "docs", merged.Root)
	assert.Nil(t, merged.RequiredFrontMatterFields)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvRoot:           "site",
		EnvRequiredFields: "title, slug ,",
		EnvExclude:        "",
		EnvJobs:           "3",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	base := Defaults()
	cfg, err := base.ApplyEnv(lookup)
	require.NoError(t, err)

	assert.Equal(t, "site", cfg.Root)
	assert.Equal(t, []string{"title", "slug"}, cfg.RequiredFrontMatterFields)
	assert.Equal(t, []string{}, cfg.ExcludedDirectories)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Empty(t, cfg.FrontMatterSchema)

	// receiver is untouched
	assert.Equal(t, ".", base.Root)
}

func TestApplyEnv_InvalidJobs(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == EnvJobs {
			return "many", true
		}
		return "", false
	}

	cfg := Defaults()
	_, err := cfg.ApplyEnv(lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvJobs)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,b,, "))
	assert.Equal(t, []string{}, SplitList(""))
}
