package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutenberg-print/gutenberg-go/internal/cmd/output"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatJSON)

	err := f.Format(&buf, map[string]any{"id": 7, "status": "PENDING"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"status": "PENDING"`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatYAML)

	err := f.Format(&buf, map[string]string{"name": "thesis.pdf"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "name: thesis.pdf")
}

func TestTableFormatter(t *testing.T) {
	t.Run("renders headers and rows", func(t *testing.T) {
		var buf bytes.Buffer
		f := output.NewFormatter(output.FormatTable)

		err := f.Format(&buf, output.Data{
			Headers: []string{"id", "job_name"},
			Rows:    [][]string{{"7", "thesis.pdf"}},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "thesis.pdf")
		// snake_case headers become title-cased display headers
		assert.Contains(t, strings.ToLower(out), "job name")
	})

	t.Run("falls back to JSON for non-tabular data", func(t *testing.T) {
		var buf bytes.Buffer
		f := output.NewFormatter(output.FormatTable)

		err := f.Format(&buf, map[string]int{"jobs": 3})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"jobs": 3`)
	})
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "JSON", ""} {
		_, err := output.ParseFormat(valid)
		assert.NoError(t, err, "format %q should parse", valid)
	}

	_, err := output.ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, output.FormatYAML, output.DetectFormat("yaml"))
	assert.Equal(t, output.FormatJSON, output.DetectFormat("JSON"))
}
