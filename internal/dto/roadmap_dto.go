package dto

type GenerateRoadmapRequest struct {
	Goal string `json:"goal"`
}

type GenerateRoadmapResponse struct {
	Goal    string `json:"goal"`
	Roadmap string `json:"roadmap"`
}

type EmailRoadmapRequest struct {
	Goal  string `json:"goal"`
	Email string `json:"email" validate:"required,email"`
}

type EmailRoadmapResponse struct {
	Sent  bool   `json:"sent"`
	Email string `json:"email"`
}
