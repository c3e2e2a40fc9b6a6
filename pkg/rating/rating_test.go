package rating

import (
	"strings"
	"testing"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name       string
		value      int
		maxStars   int
		wantFilled int
		wantLabel  string
	}{
		{"zero is not rated", 0, 5, 0, "Not rated"},
		{"one star", 1, 5, 1, "Poor"},
		{"two stars", 2, 5, 2, "Below average"},
		{"three stars", 3, 5, 3, "Average"},
		{"four stars", 4, 5, 4, "Good"},
		{"full", 5, 5, 5, "Excellent"},
		{"over max clamps", 7, 5, 5, "Excellent"},
		{"negative clamps to zero", -2, 5, 0, "Not rated"},
		{"wider scale keeps bucket cap", 8, 10, 8, "Excellent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rate(tt.value, tt.maxStars)
			if got.Filled != tt.wantFilled {
				t.Errorf("Filled = %d, want %d", got.Filled, tt.wantFilled)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestGlyphRenderer(t *testing.T) {
	r := NewGlyphRenderer()

	if got := r.Render(Rate(3, 5)); got != "★★★☆☆" {
		t.Errorf("Render(3,5) = %q, want ★★★☆☆", got)
	}
	if got := r.Render(Rate(0, 5)); got != "☆☆☆☆☆" {
		t.Errorf("Render(0,5) = %q, want ☆☆☆☆☆", got)
	}
	if got := r.Render(Rate(7, 5)); got != "★★★★★" {
		t.Errorf("Render(7,5) = %q, want ★★★★★", got)
	}
}

func TestHTMLRenderer(t *testing.T) {
	out := NewHTMLRenderer().Render(Rate(2, 5))

	if strings.Count(out, "<span") != 5 {
		t.Errorf("want 5 spans, got %d", strings.Count(out, "<span"))
	}
	if strings.Count(out, "★") != 2 || strings.Count(out, "☆") != 3 {
		t.Errorf("filled/empty mix wrong: %q", out)
	}
}

func TestNewRendererSelection(t *testing.T) {
	if _, ok := NewRenderer("html").(*HTMLRenderer); !ok {
		t.Error("html did not select HTMLRenderer")
	}
	if _, ok := NewRenderer("glyph").(*GlyphRenderer); !ok {
		t.Error("glyph did not select GlyphRenderer")
	}
	if _, ok := NewRenderer("").(*GlyphRenderer); !ok {
		t.Error("unknown kind did not fall back to GlyphRenderer")
	}
}
