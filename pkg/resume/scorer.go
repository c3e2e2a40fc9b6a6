package resume

import (
	"strings"

	"margadarsaka-be/pkg/rating"
)

// technicalKeywords groups the keyword families an applicant-tracking system
// scans for. Hits are counted per family so one stuffed category can't max
// the score alone.
var technicalKeywords = map[string][]string{
	"programming":  {"python", "java", "javascript", "c++", "react", "angular", "nodejs", "sql", "go", "golang"},
	"data_science": {"machine learning", "data analysis", "pandas", "numpy", "tensorflow", "pytorch"},
	"business":     {"project management", "agile", "scrum", "leadership", "strategy", "analysis"},
	"design":       {"ui/ux", "figma", "photoshop", "adobe", "design thinking", "prototyping"},
	"marketing":    {"digital marketing", "seo", "sem", "social media", "content marketing"},
}

var actionVerbs = []string{
	"achieved", "managed", "led", "developed", "implemented", "created",
	"designed", "optimized", "improved", "increased", "decreased",
	"collaborated", "coordinated",
}

var expectedSections = []string{"experience", "education", "skills", "project"}

// Analysis is the ATS result for one resume text.
type Analysis struct {
	Score        int      `json:"score"` // 0..100
	Stars        int      `json:"stars"` // 0..5, for the rating widget
	KeywordHits  []string `json:"keyword_hits"`
	VerbHits     int      `json:"verb_hits"`
	MissingParts []string `json:"missing_parts"`
}

// Score runs the keyword/verb/section heuristics over extracted resume text.
// Weights: keywords 50, action verbs 30, section coverage 20.
func Score(text string) Analysis {
	lower := strings.ToLower(text)

	var hits []string
	for _, words := range technicalKeywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				hits = append(hits, w)
			}
		}
	}
	keywordScore := 5 * len(hits)
	if keywordScore > 50 {
		keywordScore = 50
	}

	verbHits := 0
	for _, v := range actionVerbs {
		if strings.Contains(lower, v) {
			verbHits++
		}
	}
	verbScore := 5 * verbHits
	if verbScore > 30 {
		verbScore = 30
	}

	var missing []string
	sectionScore := 0
	for _, s := range expectedSections {
		if strings.Contains(lower, s) {
			sectionScore += 5
		} else {
			missing = append(missing, s)
		}
	}

	score := keywordScore + verbScore + sectionScore

	return Analysis{
		Score:        score,
		Stars:        starsFor(score),
		KeywordHits:  hits,
		VerbHits:     verbHits,
		MissingParts: missing,
	}
}

// starsFor buckets a 0..100 score onto the 0..5 star scale used by the
// rating widget.
func starsFor(score int) int {
	stars := (score + 10) / 20 // 0-9→0, 10-29→1, ..., 90-100→5
	if stars > rating.DefaultMaxStars {
		stars = rating.DefaultMaxStars
	}
	return stars
}
