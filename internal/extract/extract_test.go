// ABOUTME: Tests for upload text extraction
// ABOUTME: Verifies type dispatch, OCR plugging, and empty-text handling

package extract

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type fakeOCR struct {
	text string
	err  error
}

func (f *fakeOCR) ExtractText(r io.Reader) (string, error) {
	return f.text, f.err
}

func TestExtract_UnsupportedType(t *testing.T) {
	e := New()

	tests := []struct {
		name        string
		contentType string
	}{
		{"plain text", "text/plain"},
		{"word document", "application/msword"},
		{"empty content type", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(tt.contentType, strings.NewReader("data"))
			if !errors.Is(err, ErrUnsupportedType) {
				t.Errorf("Extract(%q) error = %v, want ErrUnsupportedType", tt.contentType, err)
			}
		})
	}
}

func TestExtract_ImageWithoutOCR(t *testing.T) {
	_, err := New().Extract("image/png", strings.NewReader("data"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Extract() error = %v, want ErrUnsupportedType", err)
	}
	if err == nil || !strings.Contains(err.Error(), "OCR") {
		t.Errorf("error %q should explain that OCR is not configured", err)
	}
}

func TestExtract_ImageWithOCR(t *testing.T) {
	e := New().WithImageOCR(&fakeOCR{text: "scanned page text"})

	text, err := e.Extract("image/jpeg", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if text != "scanned page text" {
		t.Errorf("Extract() = %q", text)
	}
}

func TestExtract_OCRYieldsNothing(t *testing.T) {
	e := New().WithImageOCR(&fakeOCR{text: "  \n "})

	_, err := e.Extract("image/png", strings.NewReader("data"))
	if !errors.Is(err, ErrNoExtractableText) {
		t.Errorf("Extract() error = %v, want ErrNoExtractableText", err)
	}
}

func TestExtract_InvalidPDF(t *testing.T) {
	_, err := New().Extract("application/pdf", strings.NewReader("not a pdf"))
	if err == nil {
		t.Error("Extract() should fail for malformed PDF data")
	}
}
