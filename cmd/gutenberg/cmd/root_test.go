package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidatesOutputFormat(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { flagOutput = "" })

	flagOutput = "xml"
	require.Error(t, setup(nil, nil))

	flagOutput = "YAML"
	require.NoError(t, setup(nil, nil))
	assert.Equal(t, "yaml", cfg.Output)
}
