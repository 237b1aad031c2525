package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonsketch/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "tree", cfg.Style)
	assert.Equal(t, "pokerface", cfg.Icon)
	assert.Equal(t, "none", cfg.KeyCase)
	assert.False(t, cfg.Output.KeepPadding)
	assert.False(t, cfg.Dev.Debug)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".jsonsketch.yml", `
style: rectangle
icon: heart
key_case: kebab
output:
  keep_padding: true
dev:
  debug: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "rectangle", cfg.Style)
	assert.Equal(t, "heart", cfg.Icon)
	assert.Equal(t, "kebab", cfg.KeyCase)
	assert.True(t, cfg.Output.KeepPadding)
	assert.True(t, cfg.Dev.Debug)
}

func TestConfig_LoadFromTOMLMatchesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "a.yaml", "style: rectangle\nicon: star\noutput:\n  keep_padding: true\n")
	tomlPath := writeFile(t, dir, "b.toml", "style = \"rectangle\"\nicon = \"star\"\n\n[output]\nkeep_padding = true\n")

	fromYAML, err := LoadConfig(yamlPath)
	require.NoError(t, err)
	fromTOML, err := LoadConfig(tomlPath)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "c.yml", "icon: ascii\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tree", cfg.Style)
	assert.Equal(t, "ascii", cfg.Icon)
}

func TestConfig_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yml"))
		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.ErrorTypeConfig, appErr.Type)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, dir, "bad.yml", "style: [unclosed"))
		require.Error(t, err)
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, dir, "bad.toml", "style = "))
		require.Error(t, err)
	})

	t.Run("unknown style", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, dir, "style.yml", "style: zigzag\n"))
		assert.ErrorIs(t, err, errors.ErrUnsupportedStyle)
	})

	t.Run("unknown icon", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, dir, "icon.yml", "icon: clubs\n"))
		assert.ErrorIs(t, err, errors.ErrUnknownIconFamily)
	})

	t.Run("unknown key case", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, dir, "case.yml", "key_case: title\n"))
		assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	})
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	want := writeFile(t, root, ".jsonsketch.toml", "style = \"tree\"\n")
	assert.Equal(t, want, FindConfigFile(nested))

	preferred := writeFile(t, filepath.Join(root, "a"), ".jsonsketch.yml", "style: tree\n")
	assert.Equal(t, preferred, FindConfigFile(nested))
}

func TestLoadConfigWithCLI_Precedence(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cfg.yml", "style: rectangle\nicon: heart\n")

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := LoadConfigWithCLI(path, Overrides{})
		require.NoError(t, err)
		assert.Equal(t, "rectangle", cfg.Style)
		assert.Equal(t, "heart", cfg.Icon)
	})

	t.Run("flags over file", func(t *testing.T) {
		cfg, err := LoadConfigWithCLI(path, Overrides{Style: "tree", KeepPadding: true, Debug: true})
		require.NoError(t, err)
		assert.Equal(t, "tree", cfg.Style)
		assert.Equal(t, "heart", cfg.Icon)
		assert.True(t, cfg.Output.KeepPadding)
		assert.True(t, cfg.Dev.Debug)
	})

	t.Run("no file", func(t *testing.T) {
		cfg, err := LoadConfigWithCLI("", Overrides{Icon: "star"})
		require.NoError(t, err)
		assert.Equal(t, "tree", cfg.Style)
		assert.Equal(t, "star", cfg.Icon)
	})
}
