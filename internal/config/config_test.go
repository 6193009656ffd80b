package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/internal/naming"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()

	path := filepath.Join(dir, DefaultName+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err, "a missing automapper.yaml is not an error")

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Automap.VerifyOwnership)
	assert.False(t, cfg.Automap.ExpandRelationships)
	assert.Equal(t, 8, cfg.Automap.MaxDepth)
	assert.Equal(t, []string{"ID"}, cfg.Rules.IDNames)
	assert.Equal(t, "ID", cfg.Rules.KeySuffix)
	assert.Equal(t, "verbatim", cfg.Rules.ColumnStyle)
	assert.False(t, cfg.Conventions.PluralTables)
	assert.Empty(t, cfg.Packages)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, `
packages: [./store]
types: [Order]
declarations: automapper.decl.yaml
log_level: debug
automap:
  expand_relationships: true
  max_depth: 4
rules:
  id_names: [ID, Key]
  column_style: snake
conventions:
  plural_tables: true
`)

	t.Setenv("AUTOMAPPER_AUTOMAP_MAX_DEPTH", "2")
	t.Setenv("AUTOMAPPER_RULES_KEY_SUFFIX", "_id")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"./store"}, cfg.Packages)
	assert.Equal(t, []string{"Order"}, cfg.Types)
	assert.Equal(t, "automapper.decl.yaml", cfg.Declarations)
	assert.True(t, cfg.Automap.ExpandRelationships)
	assert.Equal(t, 2, cfg.Automap.MaxDepth, "environment beats the file")
	assert.Equal(t, "_id", cfg.Rules.KeySuffix)
	assert.Equal(t, []string{"ID", "Key"}, cfg.Rules.IDNames)
	assert.True(t, cfg.Conventions.PluralTables)

	opts := cfg.RulesOptions()
	assert.Equal(t, naming.StyleSnake, opts.ColumnStyle)

	ac := cfg.AutomapConfig(nil)
	assert.NotNil(t, ac.Rules)
	assert.Equal(t, 2, ac.MaxDepth)
	assert.True(t, ac.VerifyOwnership)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "style", body: "rules:\n  column_style: kebab\n", want: "rules.column_style"},
		{name: "level", body: "log_level: loud\n", want: "log_level"},
		{name: "depth", body: "automap:\n  max_depth: -1\n", want: "automap.max_depth"},
		{name: "syntax", body: "rules: [\n", want: "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)

			_, err := Load(New(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "an explicit file must exist")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}
