package store

// Assessment phases. Submission is only legal from PhaseComplete; a new
// collecting cycle after submission is independent of the previous one.
const (
	PhaseCollecting = "COLLECTING"
	PhaseComplete   = "COMPLETE"
	PhaseSubmitted  = "SUBMITTED"
)

// AssessmentSession is the in-memory answer collector for one user session.
// One selected option per question index; "" means unanswered. Confined to a
// single session, so no locking is needed beyond the store's own.
type AssessmentSession struct {
	ID      string   `json:"id"`
	UserID  string   `json:"user_id"`
	Phase   string   `json:"phase"`
	Answers []string `json:"answers"`
}

// NewAssessmentSession starts a collecting cycle with every slot unanswered.
func NewAssessmentSession(id, userID string, questionCount int) *AssessmentSession {
	return &AssessmentSession{
		ID:      id,
		UserID:  userID,
		Phase:   PhaseCollecting,
		Answers: make([]string, questionCount),
	}
}

// Recompute moves the session between COLLECTING and COMPLETE based on
// whether every index holds a non-sentinel answer. SUBMITTED is terminal for
// the cycle and never recomputed here.
func (s *AssessmentSession) Recompute() {
	if s.Phase == PhaseSubmitted {
		return
	}
	for _, a := range s.Answers {
		if a == "" {
			s.Phase = PhaseCollecting
			return
		}
	}
	s.Phase = PhaseComplete
}

// Unanswered returns the 1-based question numbers still missing an answer.
func (s *AssessmentSession) Unanswered() []int {
	var missing []int
	for i, a := range s.Answers {
		if a == "" {
			missing = append(missing, i+1)
		}
	}
	return missing
}
