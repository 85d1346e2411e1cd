package endpoints_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutenberg-print/gutenberg-go/pkg/endpoints"
	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
)

func TestPath(t *testing.T) {
	tests := []struct {
		endpoint endpoints.Endpoint
		path     string
	}{
		{endpoints.CurrentUser, "/api/me/?format=json"},
		{endpoints.Logout, "/oidc/logout/"},
		{endpoints.Printer, "/ipp/"},
		{endpoints.ResetToken, "/api/resettoken/"},
		{endpoints.Jobs, "/api/jobs/"},
		{endpoints.CancelJob, "/cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint.String(), func(t *testing.T) {
			// Paths are a wire contract: the server matches them
			// exactly, trailing slash and query string included.
			assert.Equal(t, tt.path, tt.endpoint.Path())
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("known identifiers", func(t *testing.T) {
		path, err := endpoints.Resolve("current-user")
		require.NoError(t, err)
		assert.Equal(t, "/api/me/?format=json", path)

		path, err = endpoints.Resolve("logout")
		require.NoError(t, err)
		assert.Equal(t, "/oidc/logout/", path)

		path, err = endpoints.Resolve("jobs")
		require.NoError(t, err)
		assert.Equal(t, "/api/jobs/", path)

		path, err = endpoints.Resolve("cancel-job")
		require.NoError(t, err)
		assert.Equal(t, "/cancel", path)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		path, err := endpoints.Resolve("delete-job")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Empty(t, path)
	})

	t.Run("empty identifier", func(t *testing.T) {
		_, err := endpoints.Resolve("")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestAll(t *testing.T) {
	all := endpoints.All()
	require.Len(t, all, 6)

	seen := make(map[endpoints.Endpoint]bool)
	for _, e := range all {
		assert.True(t, e.Valid(), "endpoint %q should be valid", e)
		assert.False(t, seen[e], "endpoint %q listed twice", e)
		seen[e] = true
	}

	expected := []endpoints.Endpoint{
		endpoints.CurrentUser,
		endpoints.Logout,
		endpoints.Printer,
		endpoints.ResetToken,
		endpoints.Jobs,
		endpoints.CancelJob,
	}
	assert.Equal(t, expected, all)
}

func TestPathsAreWellFormed(t *testing.T) {
	for _, e := range endpoints.All() {
		path := e.Path()
		assert.NotEmpty(t, path)
		assert.True(t, strings.HasPrefix(path, "/"), "path %q must start with /", path)
		assert.NotContains(t, path, " ")
		assert.NotContains(t, path, "\t")
	}
}

func TestPathIsIdempotent(t *testing.T) {
	for _, e := range endpoints.All() {
		first := e.Path()
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, e.Path())
		}
	}
}

func TestValid(t *testing.T) {
	assert.True(t, endpoints.Endpoint("jobs").Valid())
	assert.False(t, endpoints.Endpoint("queue").Valid())
	assert.False(t, endpoints.Endpoint("").Valid())
}
