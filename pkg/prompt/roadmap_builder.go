package prompt

import (
	"strings"

	"margadarsaka-be/internal/constant"
)

// RoadmapBuilder produces the single-shot roadmap prompt for a goal string.
// No history, no validation: an empty goal is accepted and passed through.
type RoadmapBuilder struct {
	goal string
}

func NewRoadmapBuilder(goal string) *RoadmapBuilder {
	return &RoadmapBuilder{goal: goal}
}

// Build concatenates the fixed template with the literal goal text in a
// trailing sentence. Pure: the same goal always yields the same prompt.
func (b *RoadmapBuilder) Build() string {
	var p strings.Builder
	p.WriteString(constant.RoadmapBasePromptV1)
	p.WriteString("\n\nUser Goal: ")
	p.WriteString(b.goal)
	p.WriteString("\n\nGenerate the roadmap now.")
	return p.String()
}
