package convert

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/gutenberg-print/gutenberg-go/pkg/constants"
	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
	"github.com/gutenberg-print/gutenberg-go/pkg/logging"
)

// Pipeline plans and runs converter chains. Converters whose binaries
// are missing are filtered out once at construction, so planning only
// ever considers runnable routes.
type Pipeline struct {
	runner     Runner
	converters []Converter
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithRunner replaces the command runner, including for the built-in
// converters registered afterwards.
func WithRunner(runner Runner) PipelineOption {
	return func(p *Pipeline) {
		p.runner = runner
	}
}

// WithConverters replaces the default converter set.
func WithConverters(converters ...Converter) PipelineOption {
	return func(p *Pipeline) {
		p.converters = converters
	}
}

// NewPipeline creates a pipeline with the built-in converters, keeping
// only those whose binaries are installed.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{runner: &ExecRunner{}}
	for _, opt := range opts {
		opt(p)
	}
	if p.converters == nil {
		p.converters = []Converter{
			NewImageConverter(p.runner),
			NewDocConverter(p.runner),
			NewPDFConverter(p.runner),
		}
	}

	available := make([]Converter, 0, len(p.converters))
	for _, conv := range p.converters {
		if conv.Available() {
			available = append(available, conv)
		} else {
			logging.Warn().Str("converter", conv.Name()).Msg("converter binary not installed, skipping")
		}
	}
	p.converters = available
	return p
}

// SupportedTypes returns the MIME types accepted by the available converters.
func (p *Pipeline) SupportedTypes() []string {
	var types []string
	for _, conv := range p.converters {
		types = append(types, conv.InputTypes()...)
	}
	return types
}

// SupportedExtensions returns the file extensions accepted by the
// available converters.
func (p *Pipeline) SupportedExtensions() []string {
	var exts []string
	for _, conv := range p.converters {
		exts = append(exts, conv.Extensions()...)
	}
	return exts
}

// Accepts reports whether files of the given MIME type can enter the pipeline.
func (p *Pipeline) Accepts(inputType string) bool {
	return slices.Contains(p.SupportedTypes(), inputType)
}

// Plan finds the shortest converter chain from inputType to any of the
// wanted output types. It fails with ErrUnsupportedFormat when no
// available converter route exists.
func (p *Pipeline) Plan(inputType string, outputTypes []string) ([]Converter, error) {
	byInput := make(map[string][]Converter)
	for _, conv := range p.converters {
		for _, mime := range conv.InputTypes() {
			byInput[mime] = append(byInput[mime], conv)
		}
	}

	type hop struct {
		from string
		conv Converter
	}
	reverse := make(map[string]hop)

	// Breadth-first search over reachable output types.
	queue := []string{inputType}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, conv := range byInput[current] {
			produced := conv.OutputType()
			if _, seen := reverse[produced]; !seen {
				reverse[produced] = hop{from: current, conv: conv}
				queue = append(queue, produced)
			}
			if slices.Contains(outputTypes, produced) {
				queue = nil
				break
			}
		}
	}

	var target string
	for _, want := range outputTypes {
		if _, ok := reverse[want]; ok {
			target = want
			break
		}
	}
	if target == "" {
		return nil, errors.NewDependencyError("converter",
			fmt.Sprintf("unable to convert %s to %v, no converter available", inputType, outputTypes))
	}

	var chain []Converter
	for current := target; current != inputType; {
		h := reverse[current]
		chain = append([]Converter{h.conv}, chain...)
		current = h.from
	}
	return chain, nil
}

// Convert detects the MIME type of inputFile and converts it to one of
// the wanted output types, returning the path of the produced file.
// When the input already has an accepted type the file is returned
// unchanged. Intermediate files are written to workDir, which is
// created if missing; when workDir is empty a scratch directory is
// created instead, removed again on failure, and otherwise owned by
// the caller via the returned file's directory.
func (p *Pipeline) Convert(ctx context.Context, inputFile string, outputTypes []string, workDir string) (string, error) {
	detected, err := mimetype.DetectFile(inputFile)
	if err != nil {
		return "", errors.WrapIO("read", inputFile, err)
	}
	inputType := detected.String()

	logging.Ctx(ctx).Debug().
		Str("file", inputFile).
		Str("mime_type", inputType).
		Msg("detected input type")

	if slices.Contains(outputTypes, inputType) {
		return inputFile, nil
	}

	chain, err := p.Plan(inputType, outputTypes)
	if err != nil {
		return "", err
	}

	scratch := workDir == ""
	if scratch {
		// Date-suffixed scratch dirs, matching how the server names
		// stored job files.
		prefix := constants.DefaultWorkDirPrefix + time.Now().Format(constants.TimeFormatFilename) + "-"
		workDir, err = os.MkdirTemp("", prefix)
		if err != nil {
			return "", errors.WrapIO("create", "work directory", err)
		}
	} else if err := os.MkdirAll(workDir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", workDir, err)
	}

	file := inputFile
	for _, conv := range chain {
		stepCtx := logging.WithConverter(ctx, conv.Name())
		logging.Ctx(stepCtx).Info().
			Str("input", file).
			Msg("converting document")
		file, err = conv.Convert(stepCtx, workDir, file)
		if err != nil {
			if scratch {
				os.RemoveAll(workDir)
			}
			return "", err
		}
	}
	return file, nil
}
