package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutenberg-print/gutenberg-go/internal/config"
	"github.com/gutenberg-print/gutenberg-go/pkg/constants"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultServerURL, cfg.ServerURL)
	assert.Empty(t, cfg.Token)
	assert.False(t, cfg.ConvertLocally)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("GUTENBERG_SERVER_URL", "https://print.uni.example")
	t.Setenv("GUTENBERG_TOKEN", "env-token")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://print.uni.example", cfg.ServerURL)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestUpdateFromFlags(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.UpdateFromFlags(true, false, true, "json")
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "json", cfg.Output)

	// Empty output keeps the previous value
	cfg.UpdateFromFlags(false, true, false, "")
	assert.Equal(t, "json", cfg.Output)
}

func TestSaveToken(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := config.SaveToken("fresh-token")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".gutenberg.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "token: fresh-token")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Other settings in the file survive a token rewrite
	require.NoError(t, os.WriteFile(path, []byte("server_url: https://print.uni.example\n"), 0o600))
	_, err = config.SaveToken("next-token")
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server_url: https://print.uni.example")
	assert.Contains(t, string(data), "token: next-token")
}
