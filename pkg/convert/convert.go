// Package convert turns user documents into print-ready PDFs using
// external converter binaries (ImageMagick, Ghostscript, unoconv).
// Converters are chained automatically: the pipeline plans a route from
// the detected input MIME type to an accepted output type and runs each
// hop in a scratch directory.
package convert

import (
	"context"
	"os/exec"
	"strings"

	"github.com/gutenberg-print/gutenberg-go/pkg/constants"
	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
	"github.com/gutenberg-print/gutenberg-go/pkg/logging"
)

// MIME types the pipeline knows about. FinalPDF marks a PDF that has
// been flattened by Ghostscript and is safe to hand to the printer.
const (
	TypePNG  = "image/png"
	TypeJPEG = "image/jpeg"
	TypePDF  = "application/pdf"
	TypeDOC  = "application/msword"
	TypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypeRTF  = "text/rtf"
	TypeODT  = "application/vnd.oasis.opendocument.text"

	// TypeFinalPDF is the vendor type for the flattened output PDF.
	TypeFinalPDF = "gutenberg/pdf"
)

// Converter performs a single format conversion step.
type Converter interface {
	// Name identifies the converter in logs and errors.
	Name() string

	// InputTypes lists the MIME types this converter accepts.
	InputTypes() []string

	// Extensions lists the file extensions this converter accepts.
	Extensions() []string

	// OutputType is the MIME type of the produced file.
	OutputType() string

	// Available reports whether the backing binary is installed.
	Available() bool

	// Convert converts inputFile inside workDir and returns the path
	// of the produced file.
	Convert(ctx context.Context, workDir, inputFile string) (string, error)
}

// Runner executes external converter commands. It exists so tests can
// substitute a fake and so all converters share the sandbox wrapping.
type Runner interface {
	// Run executes a command with workDir as its conversion scratch
	// directory.
	Run(ctx context.Context, workDir string, command []string) error

	// Available reports whether the named binary can be executed.
	Available(binary string) bool
}

// ExecRunner runs converter commands directly, optionally wrapped in a
// sandbox script. The script receives the scratch directory as its
// first argument followed by the command, matching the server's
// sandbox.sh contract.
type ExecRunner struct {
	// Sandbox is the path of the wrapper script. Empty means direct
	// execution.
	Sandbox string
}

// Run implements the Runner interface.
func (r *ExecRunner) Run(ctx context.Context, workDir string, command []string) error {
	if len(command) == 0 {
		return errors.NewValidationError("command", command, "cannot be empty")
	}

	name := command[0]
	args := command[1:]
	if r.Sandbox != "" {
		name = r.Sandbox
		args = append([]string{workDir}, command...)
	}

	logging.Ctx(ctx).Debug().
		Str("binary", command[0]).
		Str("work_dir", workDir).
		Msg("running converter command")

	// A single converter invocation never runs longer than this.
	ctx, cancel := context.WithTimeout(ctx, constants.ConvertTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.ErrTimeout
		}
		procErr := errors.NewProcessError("convert", strings.Join(command, " "), string(output), err)
		if exitErr, ok := err.(*exec.ExitError); ok {
			procErr.ExitCode = exitErr.ExitCode()
		}
		return procErr
	}
	return nil
}

// Available implements the Runner interface.
func (r *ExecRunner) Available(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}
