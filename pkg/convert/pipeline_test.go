package convert_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutenberg-print/gutenberg-go/pkg/convert"
	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
	"github.com/gutenberg-print/gutenberg-go/pkg/logging"
)

// fakeRunner records commands instead of executing them.
type fakeRunner struct {
	missing  map[string]bool
	calls    [][]string
	workDirs []string
	err      error
}

func (r *fakeRunner) Run(_ context.Context, workDir string, command []string) error {
	r.calls = append(r.calls, command)
	r.workDirs = append(r.workDirs, workDir)
	return r.err
}

func (r *fakeRunner) Available(binary string) bool {
	return !r.missing[binary]
}

func newTestPipeline(t *testing.T, runner *fakeRunner) *convert.Pipeline {
	t.Helper()
	if runner.missing == nil {
		runner.missing = map[string]bool{}
	}
	return convert.NewPipeline(convert.WithRunner(runner))
}

func TestPlan(t *testing.T) {
	t.Run("image to final PDF chains two converters", func(t *testing.T) {
		p := newTestPipeline(t, &fakeRunner{})
		chain, err := p.Plan(convert.TypePNG, []string{convert.TypeFinalPDF})
		require.NoError(t, err)
		require.Len(t, chain, 2)
		assert.Equal(t, "imagemagick", chain[0].Name())
		assert.Equal(t, "ghostscript", chain[1].Name())
	})

	t.Run("document to PDF is a single hop", func(t *testing.T) {
		p := newTestPipeline(t, &fakeRunner{})
		chain, err := p.Plan(convert.TypeODT, []string{convert.TypePDF})
		require.NoError(t, err)
		require.Len(t, chain, 1)
		assert.Equal(t, "unoconv", chain[0].Name())
	})

	t.Run("unknown input type fails", func(t *testing.T) {
		p := newTestPipeline(t, &fakeRunner{})
		_, err := p.Plan("audio/mpeg", []string{convert.TypePDF})
		require.Error(t, err)
		assert.True(t, errors.IsUnsupportedFormat(err))
	})

	t.Run("missing binary removes the route", func(t *testing.T) {
		p := newTestPipeline(t, &fakeRunner{missing: map[string]bool{"gs": true}})
		_, err := p.Plan(convert.TypePNG, []string{convert.TypeFinalPDF})
		require.Error(t, err)
		assert.True(t, errors.IsUnsupportedFormat(err))

		// Plain PDF output still works without Ghostscript.
		chain, err := p.Plan(convert.TypePNG, []string{convert.TypePDF})
		require.NoError(t, err)
		require.Len(t, chain, 1)
	})
}

func TestSupported(t *testing.T) {
	p := newTestPipeline(t, &fakeRunner{})
	assert.Contains(t, p.SupportedTypes(), convert.TypePNG)
	assert.Contains(t, p.SupportedTypes(), convert.TypePDF)
	assert.Contains(t, p.SupportedExtensions(), "docx")
	assert.True(t, p.Accepts(convert.TypeJPEG))
	assert.False(t, p.Accepts("video/mp4"))

	empty := convert.NewPipeline(
		convert.WithRunner(&fakeRunner{missing: map[string]bool{"convert": true, "unoconv": true, "gs": true}}))
	assert.Empty(t, empty.SupportedTypes())
}

// pngHeader is a minimal PNG signature for MIME detection.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestConvert(t *testing.T) {
	t.Run("runs the planned chain", func(t *testing.T) {
		runner := &fakeRunner{}
		p := newTestPipeline(t, runner)

		input := writeTempFile(t, "scan.png", pngHeader)
		out, err := p.Convert(context.Background(), input, []string{convert.TypePDF}, t.TempDir())
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out, "out.pdf"))

		require.Len(t, runner.calls, 1)
		assert.Equal(t, "convert", runner.calls[0][0])
		assert.Equal(t, input, runner.calls[0][1])
	})

	t.Run("identity short-circuit", func(t *testing.T) {
		runner := &fakeRunner{}
		p := newTestPipeline(t, runner)

		input := writeTempFile(t, "doc.pdf", []byte("%PDF-1.4\n%%EOF\n"))
		out, err := p.Convert(context.Background(), input, []string{convert.TypePDF}, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, input, out)
		assert.Empty(t, runner.calls)
	})

	t.Run("converter failure propagates", func(t *testing.T) {
		runner := &fakeRunner{err: errors.NewProcessError("convert", "convert", "boom", errors.New("exit status 1"))}
		p := newTestPipeline(t, runner)

		input := writeTempFile(t, "scan.png", pngHeader)
		_, err := p.Convert(context.Background(), input, []string{convert.TypePDF}, t.TempDir())
		require.Error(t, err)
		var procErr *errors.ProcessError
		assert.ErrorAs(t, err, &procErr)
	})

	t.Run("missing file", func(t *testing.T) {
		p := newTestPipeline(t, &fakeRunner{})
		_, err := p.Convert(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"),
			[]string{convert.TypePDF}, t.TempDir())
		require.Error(t, err)
	})

	t.Run("creates a missing work directory", func(t *testing.T) {
		runner := &fakeRunner{}
		p := newTestPipeline(t, runner)

		workDir := filepath.Join(t.TempDir(), "jobs", "scratch")
		input := writeTempFile(t, "scan.png", pngHeader)
		_, err := p.Convert(context.Background(), input, []string{convert.TypePDF}, workDir)
		require.NoError(t, err)

		info, err := os.Stat(workDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("scratch directory is removed on failure", func(t *testing.T) {
		runner := &fakeRunner{err: errors.NewProcessError("convert", "convert", "boom", errors.New("exit status 1"))}
		p := newTestPipeline(t, runner)

		input := writeTempFile(t, "scan.png", pngHeader)
		_, err := p.Convert(context.Background(), input, []string{convert.TypePDF}, "")
		require.Error(t, err)

		require.Len(t, runner.workDirs, 1)
		_, err = os.Stat(runner.workDirs[0])
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("chain steps log the converter name", func(t *testing.T) {
		runner := &fakeRunner{}
		p := newTestPipeline(t, runner)
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)

		input := writeTempFile(t, "scan.png", pngHeader)
		_, err := p.Convert(ctx, input, []string{convert.TypeFinalPDF}, t.TempDir())
		require.NoError(t, err)
		assert.True(t, testLogger.Contains("imagemagick"))
		assert.True(t, testLogger.Contains("ghostscript"))
	})
}

func TestConverterMetadata(t *testing.T) {
	runner := &fakeRunner{}
	tests := []struct {
		conv   convert.Converter
		name   string
		output string
	}{
		{convert.NewImageConverter(runner), "imagemagick", convert.TypePDF},
		{convert.NewDocConverter(runner), "unoconv", convert.TypePDF},
		{convert.NewPDFConverter(runner), "ghostscript", convert.TypeFinalPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.conv.Name())
			assert.Equal(t, tt.output, tt.conv.OutputType())
			assert.NotEmpty(t, tt.conv.InputTypes())
			assert.NotEmpty(t, tt.conv.Extensions())
		})
	}
}
