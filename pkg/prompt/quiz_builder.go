package prompt

import (
	"fmt"
	"strings"

	"margadarsaka-be/internal/constant"
)

// Unanswered is the sentinel for a question the user has not answered yet.
const Unanswered = ""

// IncompleteAnswersError reports which questions are still unanswered.
// Question numbers are 1-based, matching what the user sees.
type IncompleteAnswersError struct {
	Missing []int
}

func (e *IncompleteAnswersError) Error() string {
	nums := make([]string, len(e.Missing))
	for i, n := range e.Missing {
		nums[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("answers missing for questions: %s", strings.Join(nums, ", "))
}

// QuizBuilder turns a fully-populated answer set into the career suggestion
// prompt. It refuses incomplete input instead of substituting defaults.
type QuizBuilder struct {
	answers []string
}

func NewQuizBuilder(answers []string) *QuizBuilder {
	return &QuizBuilder{answers: answers}
}

// Build emits one numbered line per answer in question order, wrapped with
// the fixed advisor instruction. Returns IncompleteAnswersError if any entry
// is unanswered.
func (b *QuizBuilder) Build() (string, error) {
	var missing []int
	for i, ans := range b.answers {
		if ans == Unanswered {
			missing = append(missing, i+1)
		}
	}
	if len(missing) > 0 {
		return "", &IncompleteAnswersError{Missing: missing}
	}

	var p strings.Builder
	p.WriteString(constant.QuizPromptHeaderV1)
	for i, ans := range b.answers {
		if i > 0 {
			p.WriteString("\n")
		}
		p.WriteString(fmt.Sprintf("%d. %s", i+1, ans))
	}
	return p.String(), nil
}
