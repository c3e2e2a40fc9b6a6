package pdfgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Generator renders a text block into a downloadable PDF artifact.
type Generator struct {
	title string
}

func NewGenerator(title string) *Generator {
	return &Generator{title: title}
}

// Generate builds the document: centered bold title, then the body in a
// multi-line cell. Characters outside Latin-1 are lossily replaced, never
// rejected.
func (g *Generator) Generate(text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 10, sanitizeLatin1(g.title), "", "C", false)
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, sanitizeLatin1(text), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeLatin1 mirrors encode("latin-1", "replace"): every rune above
// U+00FF becomes '?'. A tolerated degradation, not a failure.
func sanitizeLatin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > 0xFF {
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
