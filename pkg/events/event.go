package events

import "time"

// Topic names for the in-process event bus.
const (
	TopicUsage = "USAGE_EVENTS"
)

// Usage event kinds.
const (
	KindAssessmentSubmitted = "assessment_submitted"
	KindRoadmapGenerated    = "roadmap_generated"
	KindChatTurn            = "chat_turn"
	KindResumeUploaded      = "resume_uploaded"
)

// UsageEvent is published whenever a flow completes a model invocation (or
// a resume upload). The consumer records it; nothing replays or retries.
type UsageEvent struct {
	Kind       string    `json:"kind"`
	UserID     string    `json:"user_id"`
	SessionID  string    `json:"session_id,omitempty"`
	Model      string    `json:"model,omitempty"`
	PromptSize int       `json:"prompt_size,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
