package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MIMEPDF is the only type that gets real extraction; everything else
// passes through unextracted.
const MIMEPDF = "application/pdf"

// Extractor converts an uploaded document into plain text.
type Extractor interface {
	Extract(r io.ReaderAt, size int64) (string, error)
}

// ForMIME selects the extractor for a declared MIME type.
func ForMIME(mimeType string) Extractor {
	if strings.HasPrefix(mimeType, MIMEPDF) {
		return &PDFExtractor{}
	}
	return &PassthroughExtractor{}
}

// ExtractText is the boundary entry point used by the upload handlers.
func ExtractText(r io.ReaderAt, size int64, mimeType string) (string, error) {
	return ForMIME(mimeType).Extract(r, size)
}

// PDFExtractor pulls per-page text and joins pages with a newline.
type PDFExtractor struct{}

func (e *PDFExtractor) Extract(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("not a valid PDF document: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		text.WriteString(content)
		text.WriteString("\n")
	}

	return text.String(), nil
}

// PassthroughExtractor returns the raw bytes as text for types we do not
// parse (plain text pastes and the like).
type PassthroughExtractor struct{}

func (e *PassthroughExtractor) Extract(r io.ReaderAt, size int64) (string, error) {
	raw, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(raw), nil
}
