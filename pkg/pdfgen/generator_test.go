package pdfgen

import (
	"bytes"
	"testing"
)

func TestSanitizeLatin1(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii untouched", "Phase 1: Foundation", "Phase 1: Foundation"},
		{"latin-1 kept", "café résumé", "café résumé"},
		{"emoji replaced", "Roadmap 🚀 ready", "Roadmap ? ready"},
		{"devanagari replaced", "मार्ग ok", "????? ok"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLatin1(tt.in); got != tt.want {
				t.Errorf("sanitizeLatin1(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateProducesPDF(t *testing.T) {
	g := NewGenerator("Your Career Roadmap")

	out, err := g.Generate("**Goal Summary**\nBecome a data scientist 🚀")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF (first bytes: %q)", out[:min(8, len(out))])
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
