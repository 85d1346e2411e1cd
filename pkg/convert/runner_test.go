package convert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/gutenberg-print/gutenberg-go/pkg/errors"
)

func TestExecRunnerAvailable(t *testing.T) {
	runner := &ExecRunner{}
	assert.True(t, runner.Available("sh"))
	assert.False(t, runner.Available("definitely-not-a-real-binary-xyz"))
}

func TestExecRunnerRun(t *testing.T) {
	runner := &ExecRunner{}

	t.Run("successful command", func(t *testing.T) {
		err := runner.Run(context.Background(), t.TempDir(), []string{"true"})
		assert.NoError(t, err)
	})

	t.Run("failing command", func(t *testing.T) {
		err := runner.Run(context.Background(), t.TempDir(), []string{"sh", "-c", "echo broken >&2; exit 3"})
		require.Error(t, err)

		var procErr *pkgerrors.ProcessError
		require.ErrorAs(t, err, &procErr)
		assert.Equal(t, 3, procErr.ExitCode)
		assert.Contains(t, procErr.Output, "broken")
	})

	t.Run("empty command", func(t *testing.T) {
		err := runner.Run(context.Background(), t.TempDir(), nil)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := runner.Run(ctx, t.TempDir(), []string{"sleep", "5"})
		require.Error(t, err)
	})

	t.Run("deadline kills the process", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		err := runner.Run(ctx, t.TempDir(), []string{"sleep", "5"})
		require.Error(t, err)
		assert.True(t, pkgerrors.IsTimeout(err))
	})
}
