package prompt

import (
	"strings"

	"margadarsaka-be/pkg/llm"
)

// ChatBuilder assembles the advisor prompt from the session transcript plus
// the current turn's user content. The system message, when present, is
// always the first history entry and is included here even though the
// rendered transcript hides it.
type ChatBuilder struct {
	history []llm.Message
	content string
}

// NewChatBuilder takes the prior history (in chronological order) and the
// new user content. For an upload turn, content is the full extracted
// document text; the transcript itself only ever stores a placeholder row,
// so large payloads never get re-echoed through later prompts.
func NewChatBuilder(history []llm.Message, content string) *ChatBuilder {
	return &ChatBuilder{history: history, content: content}
}

// Build joins every prior message as "{role}: {content}" and appends the new
// user line.
func (b *ChatBuilder) Build() string {
	var p strings.Builder
	for _, msg := range b.history {
		p.WriteString(msg.Role)
		p.WriteString(": ")
		p.WriteString(msg.Content)
		p.WriteString("\n")
	}
	p.WriteString("user: ")
	p.WriteString(b.content)
	return p.String()
}
