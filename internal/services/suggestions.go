package services

import "alfredoptarigan/resume-ats/internal/models"

const (
	lowATSScoreThreshold    = 50
	lowSimilarityThreshold  = 0.5
	suggestionCoverage      = "Increase coverage of required skills — add missing technologies in your experience/skills section."
	suggestionSummary       = "Rewrite your summary to reflect the role responsibilities and keywords."
	suggestionMissingSkills = "Add at least 2–3 of the missing skills (if you know them) or highlight transferable experience."
	suggestionFormatting    = "Use clear section headings (Skills, Experience, Projects) and avoid images that confuse parsers."
)

// GenerateSuggestions turns a report into ordered improvement tips. The
// formatting tip is always last.
func GenerateSuggestions(report *models.ScoreReport) []string {
	suggestions := make([]string, 0, 4)

	if report.ATSScore < lowATSScoreThreshold {
		suggestions = append(suggestions, suggestionCoverage)
	}
	if report.Similarity < lowSimilarityThreshold {
		suggestions = append(suggestions, suggestionSummary)
	}
	if len(report.MissingSkills) > 0 {
		suggestions = append(suggestions, suggestionMissingSkills)
	}

	return append(suggestions, suggestionFormatting)
}
