package prompt

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"margadarsaka-be/internal/constant"
	"margadarsaka-be/pkg/llm"
)

func TestQuizBuilderNumberedLines(t *testing.T) {
	answers := []string{
		"Solving complex problems or puzzles",
		"Flexible or remote workspace",
		"Insights from data and research",
	}

	got, err := NewQuizBuilder(answers).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !strings.HasPrefix(got, constant.QuizPromptHeaderV1) {
		t.Errorf("prompt does not start with the advisor instruction header")
	}

	body := strings.TrimPrefix(got, constant.QuizPromptHeaderV1)
	lines := strings.Split(body, "\n")
	if len(lines) != len(answers) {
		t.Fatalf("numbered lines = %d, want %d", len(lines), len(answers))
	}
	for i, ans := range answers {
		want := fmt.Sprintf("%d. %s", i+1, ans)
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestQuizBuilderRefusesIncomplete(t *testing.T) {
	answers := []string{"a", Unanswered, "c", Unanswered}

	_, err := NewQuizBuilder(answers).Build()
	if err == nil {
		t.Fatal("Build() succeeded on incomplete answers")
	}

	var incomplete *IncompleteAnswersError
	if !errors.As(err, &incomplete) {
		t.Fatalf("error type = %T, want *IncompleteAnswersError", err)
	}
	if len(incomplete.Missing) != 2 || incomplete.Missing[0] != 2 || incomplete.Missing[1] != 4 {
		t.Errorf("Missing = %v, want [2 4]", incomplete.Missing)
	}
}

func TestChatBuilderIncludesSystemMessage(t *testing.T) {
	history := []llm.Message{
		{Role: "system", Content: "S"},
		{Role: "user", Content: "hi"},
	}

	got := NewChatBuilder(history, "hello?").Build()
	want := "system: S\nuser: hi\nuser: hello?"
	if got != want {
		t.Errorf("prompt = %q, want %q", got, want)
	}
}

func TestChatBuilderDocumentTurn(t *testing.T) {
	history := []llm.Message{
		{Role: "system", Content: "S"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	extracted := "John Doe\nSoftware Engineer\n5 years of Go"

	got := NewChatBuilder(history, extracted).Build()
	want := "system: S\nuser: hi\nassistant: hello\nuser: " + extracted
	if got != want {
		t.Errorf("prompt = %q, want %q", got, want)
	}

	// The placeholder never leaks into the prompt on the upload turn itself.
	if strings.Contains(got, constant.ResumeUploadedPlaceholder) {
		t.Errorf("upload-turn prompt contains the placeholder instead of the document text")
	}
}

func TestRoadmapBuilderDeterministic(t *testing.T) {
	first := NewRoadmapBuilder("Become a data scientist").Build()
	second := NewRoadmapBuilder("Become a data scientist").Build()
	if first != second {
		t.Error("same goal produced different prompts")
	}

	other := NewRoadmapBuilder("Become a pilot").Build()
	if !strings.Contains(other, "User Goal: Become a pilot") {
		t.Errorf("prompt missing substituted goal text")
	}
	if !strings.HasPrefix(other, constant.RoadmapBasePromptV1) {
		t.Error("prompt does not start with the roadmap template")
	}

	// Prompts for different goals differ only in the substituted goal text.
	trim := func(s string) string { return strings.ReplaceAll(s, "Become a data scientist", "") }
	if trim(first) != strings.ReplaceAll(other, "Become a pilot", "") {
		t.Error("template portion differs between goals")
	}
}

func TestRoadmapBuilderEmptyGoal(t *testing.T) {
	got := NewRoadmapBuilder("").Build()
	if !strings.Contains(got, "User Goal: \n") {
		t.Errorf("empty goal not passed through verbatim")
	}
}
