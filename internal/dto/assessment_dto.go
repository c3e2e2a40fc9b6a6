package dto

import (
	"time"

	"github.com/google/uuid"
)

type QuestionDTO struct {
	Number  int      `json:"number"` // 1-based, matches what the user sees
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type GetQuestionsResponse struct {
	Questions []QuestionDTO `json:"questions"`
}

type SelectAnswerRequest struct {
	QuestionNumber int    `json:"question_number" validate:"required,min=1"`
	Answer         string `json:"answer" validate:"required"`
}

type SelectAnswerResponse struct {
	QuestionNumber int    `json:"question_number"`
	Answered       int    `json:"answered"`
	Total          int    `json:"total"`
	Phase          string `json:"phase"` // COLLECTING | COMPLETE
}

type SubmitAssessmentResponse struct {
	AssessmentId   uuid.UUID `json:"assessment_id"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}

type AssessmentHistoryItem struct {
	Id             uuid.UUID `json:"id"`
	Answers        []string  `json:"answers"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}

type GetAssessmentHistoryResponse struct {
	Assessments []AssessmentHistoryItem `json:"assessments"`
}
