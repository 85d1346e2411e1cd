package convert

import (
	"context"
	"path/filepath"
)

// imageConvertOptions are the ImageMagick flags that scale a picture
// onto an A4 page at 300 DPI with white borders. They must stay in sync
// with what the server produces for preview rendering.
var imageConvertOptions = []string{
	"-resize", "2365x3335", "-gravity", "center", "-background", "white",
	"-extent", "2490x3510", "-units", "PixelsPerInch", "-density", "300x300",
}

// ImageConverter converts PNG and JPEG images to PDF via ImageMagick.
type ImageConverter struct {
	runner Runner
}

// NewImageConverter creates an ImageConverter backed by the given runner.
func NewImageConverter(runner Runner) *ImageConverter {
	return &ImageConverter{runner: runner}
}

// Name implements the Converter interface.
func (c *ImageConverter) Name() string { return "imagemagick" }

// InputTypes implements the Converter interface.
func (c *ImageConverter) InputTypes() []string {
	return []string{TypePNG, TypeJPEG}
}

// Extensions implements the Converter interface.
func (c *ImageConverter) Extensions() []string {
	return []string{"png", "jpg", "jpeg"}
}

// OutputType implements the Converter interface.
func (c *ImageConverter) OutputType() string { return TypePDF }

// Available implements the Converter interface.
func (c *ImageConverter) Available() bool {
	return c.runner.Available("convert")
}

// Convert implements the Converter interface.
func (c *ImageConverter) Convert(ctx context.Context, workDir, inputFile string) (string, error) {
	out := filepath.Join(workDir, "out.pdf")
	command := append([]string{"convert", inputFile}, imageConvertOptions...)
	command = append(command, out)
	if err := c.runner.Run(ctx, workDir, command); err != nil {
		return "", err
	}
	return out, nil
}

// DocConverter converts office documents to PDF via unoconv.
type DocConverter struct {
	runner Runner
}

// NewDocConverter creates a DocConverter backed by the given runner.
func NewDocConverter(runner Runner) *DocConverter {
	return &DocConverter{runner: runner}
}

// Name implements the Converter interface.
func (c *DocConverter) Name() string { return "unoconv" }

// InputTypes implements the Converter interface.
func (c *DocConverter) InputTypes() []string {
	return []string{TypeDOC, TypeDOCX, TypeRTF, TypeODT}
}

// Extensions implements the Converter interface.
func (c *DocConverter) Extensions() []string {
	return []string{"doc", "docx", "rtf", "odt"}
}

// OutputType implements the Converter interface.
func (c *DocConverter) OutputType() string { return TypePDF }

// Available implements the Converter interface.
func (c *DocConverter) Available() bool {
	return c.runner.Available("unoconv")
}

// Convert implements the Converter interface.
func (c *DocConverter) Convert(ctx context.Context, workDir, inputFile string) (string, error) {
	out := filepath.Join(workDir, "out.pdf")
	if err := c.runner.Run(ctx, workDir, []string{"unoconv", "-o", out, inputFile}); err != nil {
		return "", err
	}
	return out, nil
}

// PDFConverter flattens a PDF with Ghostscript so that transparency,
// odd compatibility levels, and embedded scripts cannot reach the
// printer. Its output carries the vendor FinalPDF type.
type PDFConverter struct {
	runner Runner
}

// NewPDFConverter creates a PDFConverter backed by the given runner.
func NewPDFConverter(runner Runner) *PDFConverter {
	return &PDFConverter{runner: runner}
}

// Name implements the Converter interface.
func (c *PDFConverter) Name() string { return "ghostscript" }

// InputTypes implements the Converter interface.
func (c *PDFConverter) InputTypes() []string {
	return []string{TypePDF}
}

// Extensions implements the Converter interface.
func (c *PDFConverter) Extensions() []string {
	return []string{"pdf"}
}

// OutputType implements the Converter interface.
func (c *PDFConverter) OutputType() string { return TypeFinalPDF }

// Available implements the Converter interface.
func (c *PDFConverter) Available() bool {
	return c.runner.Available("gs")
}

// Convert implements the Converter interface.
func (c *PDFConverter) Convert(ctx context.Context, workDir, inputFile string) (string, error) {
	out := filepath.Join(workDir, "final.pdf")
	command := []string{
		"gs", "-sDEVICE=pdfwrite", "-dNOPAUSE",
		"-dBATCH", "-dSAFER", "-dCompatibilityLevel=1.4",
		"-sOutputFile=" + out, inputFile,
	}
	if err := c.runner.Run(ctx, workDir, command); err != nil {
		return "", err
	}
	return out, nil
}
