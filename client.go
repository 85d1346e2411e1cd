package gutenberg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gutenberg-print/gutenberg-go/pkg/constants"
	"github.com/gutenberg-print/gutenberg-go/pkg/convert"
	"github.com/gutenberg-print/gutenberg-go/pkg/endpoints"
	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
	"github.com/gutenberg-print/gutenberg-go/pkg/logging"
)

// Me returns the profile of the signed-in user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.transport.Get(ctx, endpoints.CurrentUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Jobs returns the user's print jobs, newest first.
func (c *Client) Jobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.transport.Get(ctx, endpoints.Jobs, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Job returns a single print job by ID.
func (c *Client) Job(ctx context.Context, id int) (*Job, error) {
	var job Job
	path := endpoints.Jobs.Path() + strconv.Itoa(id) + "/"
	if err := c.transport.GetPath(logging.WithJob(ctx, id), path, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CancelJob cancels a pending print job. The server matches the cancel
// route as the job URL followed by the registered cancel suffix.
func (c *Client) CancelJob(ctx context.Context, id int) error {
	path := endpoints.Jobs.Path() + strconv.Itoa(id) + endpoints.CancelJob.Path()
	c.logger.Info().Int("job_id", id).Msg("canceling print job")
	return c.transport.PostPath(logging.WithJob(ctx, id), path, nil, "", nil)
}

// ResetToken rotates the user's print token and returns the new value.
// The previous token stops working immediately; a client constructed
// with the old token must be rebuilt.
func (c *Client) ResetToken(ctx context.Context) (string, error) {
	var result struct {
		Token string `json:"token"`
	}
	if err := c.transport.Post(ctx, endpoints.ResetToken, nil, "", &result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", errors.NewParseError("json", endpoints.ResetToken.Path(), "response carried no token", nil)
	}
	c.logger.Info().Msg("print token rotated")
	return result.Token, nil
}

// PrintOptions control how a submitted document is printed.
type PrintOptions struct {
	// Name overrides the job name; defaults to the file's base name.
	Name string

	// Copies requested, defaulting to 1.
	Copies int

	// TwoSided requests duplex printing.
	TwoSided bool

	// Color requests color printing instead of grayscale.
	Color bool

	// ConvertLocally converts the document to PDF on this machine
	// before upload instead of relying on the server's converters.
	// Requires a pipeline configured via WithPipeline.
	ConvertLocally bool
}

// Print submits a document to the print queue and returns the created job.
func (c *Client) Print(ctx context.Context, file string, opts PrintOptions) (*Job, error) {
	if opts.Copies == 0 {
		opts.Copies = constants.DefaultCopies
	}
	if opts.Copies < 0 || opts.Copies > constants.MaxCopies {
		return nil, errors.NewValidationError("copies", opts.Copies,
			fmt.Sprintf("must be between 1 and %d", constants.MaxCopies))
	}
	if opts.Name == "" {
		opts.Name = filepath.Base(file)
	}
	if len(opts.Name) > constants.MaxFilenameLength {
		return nil, errors.NewValidationError("name", opts.Name, "filename too long")
	}

	ctx = logging.WithOperation(ctx, "print")

	upload := file
	if opts.ConvertLocally {
		if c.pipeline == nil {
			return nil, errors.NewConfigError("client", "local conversion requested without a pipeline", nil)
		}
		converted, err := c.pipeline.Convert(ctx, file,
			[]string{convert.TypePDF, convert.TypeFinalPDF}, "")
		if err != nil {
			return nil, err
		}
		if converted != file {
			// The pipeline created the scratch directory holding the
			// converted file; remove it once the upload is done.
			defer os.RemoveAll(filepath.Dir(converted))
		}
		upload = converted
	}

	info, err := os.Stat(upload)
	if err != nil {
		return nil, errors.WrapIO("open", upload, err)
	}
	if info.Size() > constants.MaxUploadSize {
		return nil, errors.NewValidationError("file", upload, "exceeds maximum upload size")
	}

	body, contentType, err := multipartBody(upload, opts)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("file", upload).
		Str("name", opts.Name).
		Int("copies", opts.Copies).
		Msg("submitting print job")

	// Uploads get a longer deadline than ordinary API calls.
	ctx, cancel := context.WithTimeout(ctx, constants.UploadTimeout)
	defer cancel()

	var job Job
	if err := c.transport.Post(ctx, endpoints.Jobs, body, contentType, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// multipartBody builds the multipart form the jobs endpoint expects.
func multipartBody(file string, opts PrintOptions) (io.Reader, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", errors.WrapIO("open", file, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", opts.Name)
	if err != nil {
		return nil, "", errors.WrapIO("create", "multipart form", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", errors.WrapIO("read", file, err)
	}

	fields := map[string]string{
		"name":      opts.Name,
		"copies":    strconv.Itoa(opts.Copies),
		"two_sided": strconv.FormatBool(opts.TwoSided),
		"color":     strconv.FormatBool(opts.Color),
	}
	for field, value := range fields {
		if err := writer.WriteField(field, value); err != nil {
			return nil, "", errors.WrapIO("write", "multipart form", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.WrapIO("close", "multipart form", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
