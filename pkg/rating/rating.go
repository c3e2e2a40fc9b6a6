package rating

import (
	"fmt"
	"strings"
)

// DefaultMaxStars is the widget's standard scale.
const DefaultMaxStars = 5

// labels is the fixed 6-bucket lookup, indexed by min(value, 5).
var labels = [...]string{"Not rated", "Poor", "Below average", "Average", "Good", "Excellent"}

// Rating is the computed render state for one value. Stateless: recomputed
// per render, no identity beyond the current value.
type Rating struct {
	Value    int    `json:"value"`
	MaxStars int    `json:"max_stars"`
	Filled   int    `json:"filled"`
	Label    string `json:"label"`
}

// Rate clamps value into [0, maxStars] and picks the label bucket.
func Rate(value, maxStars int) Rating {
	if maxStars <= 0 {
		maxStars = DefaultMaxStars
	}
	filled := value
	if filled < 0 {
		filled = 0
	}
	if filled > maxStars {
		filled = maxStars
	}

	bucket := value
	if bucket < 0 {
		bucket = 0
	}
	if bucket > 5 {
		bucket = 5
	}

	return Rating{
		Value:    value,
		MaxStars: maxStars,
		Filled:   filled,
		Label:    labels[bucket],
	}
}

// Renderer turns a rating into a displayable star row. Two implementations
// exist; which one is used is decided at construction time, not per call.
type Renderer interface {
	Render(r Rating) string
}

// GlyphRenderer emits a plain unicode star row: filled stars first, then
// empty ones.
type GlyphRenderer struct{}

func NewGlyphRenderer() *GlyphRenderer {
	return &GlyphRenderer{}
}

func (g *GlyphRenderer) Render(r Rating) string {
	return strings.Repeat("★", r.Filled) + strings.Repeat("☆", r.MaxStars-r.Filled)
}

// HTMLRenderer is the fallback representation: a span per star, colored the
// way the original inline widget colored them.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (h *HTMLRenderer) Render(r Rating) string {
	var b strings.Builder
	for i := 1; i <= r.MaxStars; i++ {
		glyph, color := "☆", "#E0E0E0"
		if i <= r.Filled {
			glyph, color = "★", "#FFAC33"
		}
		b.WriteString(fmt.Sprintf(`<span class="star" style="color: %s;">%s</span>`, color, glyph))
	}
	return b.String()
}

// NewRenderer selects the implementation by name; unknown names get the
// glyph renderer.
func NewRenderer(kind string) Renderer {
	if kind == "html" {
		return NewHTMLRenderer()
	}
	return NewGlyphRenderer()
}
