package resume

import "testing"

func TestScoreEmptyText(t *testing.T) {
	got := Score("")
	if got.Score != 0 {
		t.Errorf("empty text score = %d, want 0", got.Score)
	}
	if got.Stars != 0 {
		t.Errorf("empty text stars = %d, want 0", got.Stars)
	}
	if len(got.MissingParts) != 4 {
		t.Errorf("missing sections = %d, want all 4", len(got.MissingParts))
	}
}

func TestScoreRichResume(t *testing.T) {
	text := `Experience
Led a team of five engineers; developed and implemented a Python + SQL data
pipeline, optimized machine learning workloads with tensorflow and pandas,
improved latency, managed agile delivery.
Education
B.Tech in Computer Science.
Skills
python, sql, go, project management, leadership
Projects
Designed and created a react dashboard.`

	got := Score(text)
	if got.Score < 70 {
		t.Errorf("rich resume score = %d, want >= 70", got.Score)
	}
	if got.Stars < 4 {
		t.Errorf("rich resume stars = %d, want >= 4", got.Stars)
	}
	if len(got.MissingParts) != 0 {
		t.Errorf("unexpected missing sections: %v", got.MissingParts)
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	if Score("PYTHON Achieved EXPERIENCE").Score == 0 {
		t.Error("matching should be case-insensitive")
	}
}

func TestStarsFor(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 0}, {9, 0}, {10, 1}, {29, 1}, {30, 2}, {50, 3}, {70, 4}, {90, 5}, {100, 5},
	}
	for _, tt := range tests {
		if got := starsFor(tt.score); got != tt.want {
			t.Errorf("starsFor(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
