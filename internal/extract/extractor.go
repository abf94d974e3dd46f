// Package extract provides text extraction from resume document formats.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperjump/hirescope/internal/models"
)

var (
	// ErrUnsupportedType is returned for file types other than PDF, DOCX, and plain text.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrNoText is returned when extraction succeeds but yields no usable text.
	ErrNoText = errors.New("no text content extracted")
	// ErrExtractionFailed wraps any failure to get text out of a
	// supported file type, so callers can distinguish a broken document
	// from bad input.
	ErrExtractionFailed = errors.New("extraction failed")
)

// OCR recognizes text in a scanned or image-only document. Extraction
// falls back to OCR when a PDF yields fewer characters than the
// configured minimum.
type OCR interface {
	Recognize(ctx context.Context, content []byte) (string, error)
}

// Extractor extracts plain text from resume files.
type Extractor struct {
	ocr         OCR
	ocrMinChars int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOCR sets the OCR fallback used for image-only PDFs.
func WithOCR(ocr OCR) Option {
	return func(e *Extractor) { e.ocr = ocr }
}

// WithOCRMinChars sets the character count below which PDF extraction
// is considered image-only and OCR is attempted.
func WithOCRMinChars(n int) Option {
	return func(e *Extractor) { e.ocrMinChars = n }
}

// NewExtractor returns an Extractor with the given options applied.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{ocrMinChars: 80}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractFile reads the file at path and extracts its text.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (*models.ExtractedText, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return e.Extract(ctx, filepath.Base(path), content)
}

// Extract extracts text from content. The file type is chosen by the
// filename extension: .pdf, .docx, and plain text are supported;
// anything else returns ErrUnsupportedType. A PDF that yields fewer
// than the configured minimum characters falls back to OCR when
// available, or returns a degraded result with a warning when not.
func (e *Extractor) Extract(ctx context.Context, filename string, content []byte) (*models.ExtractedText, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	var (
		result *models.ExtractedText
		err    error
	)
	switch ext {
	case ".pdf":
		result, err = e.extractPDF(ctx, content)
	case ".docx":
		result, err = extractDOCX(content)
	case ".txt", ".md", "":
		result, err = extractPlain(content)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	return result, nil
}

func (e *Extractor) extractPDF(ctx context.Context, content []byte) (*models.ExtractedText, error) {
	result, err := extractPDFText(ctx, content)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(result.Text)) >= e.ocrMinChars {
		return result, nil
	}

	// Likely a scanned or image-only PDF.
	if e.ocr != nil {
		text, ocrErr := e.ocr.Recognize(ctx, content)
		if ocrErr == nil && len(strings.TrimSpace(text)) > 0 {
			out := textToExtracted(text, "ocr")
			out.Degraded = true
			out.Warnings = append(out.Warnings, "text recovered via OCR; formatting may be lost")
			return out, nil
		}
		if ocrErr != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("OCR fallback failed: %v", ocrErr))
		}
	}
	if len(strings.TrimSpace(result.Text)) == 0 {
		return nil, fmt.Errorf("%w: PDF appears to contain no machine-readable text", ErrNoText)
	}
	result.Degraded = true
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("only %d characters extracted; document may be image-based", len(strings.TrimSpace(result.Text))))
	return result, nil
}

// textToExtracted builds an ExtractedText from raw text, splitting into
// lines and numbering paragraphs at blank-line boundaries.
func textToExtracted(text, source string) *models.ExtractedText {
	lines := strings.Split(text, "\n")
	out := &models.ExtractedText{Text: text, Source: source}
	para := 0
	blank := false
	for _, l := range lines {
		t := strings.TrimRight(l, " \t\r")
		if strings.TrimSpace(t) == "" {
			blank = true
			continue
		}
		if blank {
			para++
			blank = false
		}
		out.Lines = append(out.Lines, models.Line{Text: t, Page: 1, Paragraph: para})
	}
	return out
}
