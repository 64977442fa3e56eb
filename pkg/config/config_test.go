package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Matcher.Fuzzy)
	assert.False(t, cfg.Matcher.WholeWord)
	assert.True(t, cfg.Dict.CompiledCache)
	assert.True(t, cfg.Output.Color)
	assert.True(t, cfg.Output.ShowType)
	assert.Equal(t, 8192, cfg.Server.MaxLineLen)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// second init loads the file it just wrote
	cfg2, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, cfg2)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[matcher]
fuzzy = true
whole_word = true

[server]
max_line_len = 4096
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Matcher.Fuzzy)
	assert.True(t, cfg.Matcher.WholeWord)
	assert.Equal(t, 4096, cfg.Server.MaxLineLen)
	// untouched sections keep their defaults
	assert.True(t, cfg.Output.Color)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// unknown keys must not break loading of known ones
	content := `
[matcher]
fuzzy = true
some_future_knob = "yes"

[output]
color = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Matcher.Fuzzy)
	assert.False(t, cfg.Output.Color)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Matcher.Fuzzy = true
	cfg.Dict.Path = "/data/names.tsv"
	cfg.Server.MaxLineLen = 1234

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
