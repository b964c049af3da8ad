// ABOUTME: Text extraction for uploaded files, PDF built in and image OCR pluggable
// ABOUTME: Extraction collaborators produce plain text; empty text is an explicit error
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedType is returned for content types without an extractor
	ErrUnsupportedType = errors.New("unsupported file type, please upload PDFs or images")
	// ErrNoExtractableText is returned when extraction yields empty text
	ErrNoExtractableText = errors.New("no text content found in the file")
)

// ImageOCR extracts text from an image. No backend ships by default; image
// uploads without one get a descriptive unsupported error.
type ImageOCR interface {
	ExtractText(r io.Reader) (string, error)
}

// Extractor turns uploaded files into plain text by content type
type Extractor struct {
	ocr ImageOCR
}

// New creates an Extractor with PDF support and no image OCR backend
func New() *Extractor {
	return &Extractor{}
}

// WithImageOCR configures an OCR backend for image uploads
func (e *Extractor) WithImageOCR(ocr ImageOCR) *Extractor {
	e.ocr = ocr
	return e
}

// Extract returns the plain text of an uploaded file. PDFs are read with the
// pdf library; images require a configured OCR backend. Anything else is
// unsupported. Whitespace-only output counts as no extractable text.
func (e *Extractor) Extract(contentType string, r io.Reader) (string, error) {
	var text string
	var err error

	switch {
	case contentType == "application/pdf":
		text, err = extractPDF(r)
	case strings.HasPrefix(contentType, "image/"):
		if e.ocr == nil {
			return "", fmt.Errorf("%w (image OCR is not configured)", ErrUnsupportedType)
		}
		text, err = e.ocr.ExtractText(r)
	default:
		return "", fmt.Errorf("%w (got %s)", ErrUnsupportedType, contentType)
	}

	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoExtractableText
	}
	return text, nil
}

// extractPDF reads all pages' plain text. The pdf library wants a seekable
// file, so the upload is spooled to a temp file first.
func extractPDF(r io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, r); err != nil {
		return "", fmt.Errorf("spooling upload: %w", err)
	}

	f, rdr, err := pdf.Open(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	plain, err := rdr.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("buffering pdf text: %w", err)
	}

	return buf.String(), nil
}
