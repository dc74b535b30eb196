package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-ats/internal/models"
)

func TestGenerateSuggestions(t *testing.T) {
	cases := []struct {
		name   string
		report models.ScoreReport
		want   []string
	}{
		{
			name:   "strong resume",
			report: models.ScoreReport{ATSScore: 82.5, Similarity: 0.71, MissingSkills: []string{}},
			want:   []string{suggestionFormatting},
		},
		{
			name:   "weak resume",
			report: models.ScoreReport{ATSScore: 31.2, Similarity: 0.42, MissingSkills: []string{"AWS"}},
			want:   []string{suggestionCoverage, suggestionSummary, suggestionMissingSkills, suggestionFormatting},
		},
		{
			name:   "missing skills only",
			report: models.ScoreReport{ATSScore: 70, Similarity: 0.6, MissingSkills: []string{"Docker"}},
			want:   []string{suggestionMissingSkills, suggestionFormatting},
		},
		{
			name:   "thresholds are exclusive",
			report: models.ScoreReport{ATSScore: 50, Similarity: 0.5},
			want:   []string{suggestionFormatting},
		},
		{
			name:   "low similarity only",
			report: models.ScoreReport{ATSScore: 64, Similarity: 0.1},
			want:   []string{suggestionSummary, suggestionFormatting},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GenerateSuggestions(&tc.report)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerateSuggestions_Wording(t *testing.T) {
	got := GenerateSuggestions(&models.ScoreReport{ATSScore: 10, Similarity: 0.1, MissingSkills: []string{"AWS"}})

	assert.Equal(t, []string{
		"Increase coverage of required skills — add missing technologies in your experience/skills section.",
		"Rewrite your summary to reflect the role responsibilities and keywords.",
		"Add at least 2–3 of the missing skills (if you know them) or highlight transferable experience.",
		"Use clear section headings (Skills, Experience, Projects) and avoid images that confuse parsers.",
	}, got)
}
