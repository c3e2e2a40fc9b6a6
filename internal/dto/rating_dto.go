package dto

type RenderRatingRequest struct {
	Value    int `json:"value" validate:"min=0"`
	MaxStars int `json:"max_stars" validate:"omitempty,min=1,max=10"`
}

type RenderRatingResponse struct {
	Value    int    `json:"value"`
	MaxStars int    `json:"max_stars"`
	Filled   int    `json:"filled"`
	Label    string `json:"label"`
	Rendered string `json:"rendered"`
}
