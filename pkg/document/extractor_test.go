package document

import (
	"strings"
	"testing"
)

func TestForMIMESelection(t *testing.T) {
	if _, ok := ForMIME("application/pdf").(*PDFExtractor); !ok {
		t.Error("application/pdf did not select PDFExtractor")
	}
	if _, ok := ForMIME("text/plain").(*PassthroughExtractor); !ok {
		t.Error("text/plain did not select PassthroughExtractor")
	}
	if _, ok := ForMIME("application/vnd.openxmlformats-officedocument.wordprocessingml.document").(*PassthroughExtractor); !ok {
		t.Error("docx did not fall through to PassthroughExtractor")
	}
}

func TestPassthroughExtract(t *testing.T) {
	content := "plain resume text\nwith a second line"
	got, err := ExtractText(strings.NewReader(content), int64(len(content)), "text/plain")
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if got != content {
		t.Errorf("got %q, want passthrough of input", got)
	}
}

func TestPDFExtractRejectsGarbage(t *testing.T) {
	content := "this is definitely not a pdf"
	_, err := ExtractText(strings.NewReader(content), int64(len(content)), "application/pdf")
	if err == nil {
		t.Fatal("expected an extraction error for a non-PDF payload")
	}
}
