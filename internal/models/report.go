package models

// ScoreReport is the scoring result for one resume against one role.
// FoundSkills and MissingSkills partition the role's required skills.
type ScoreReport struct {
	FoundSkills   []string `json:"found_skills"`
	MissingSkills []string `json:"missing_skills"`
	Coverage      float64  `json:"coverage"`
	Similarity    float64  `json:"similarity"`
	ATSScore      float64  `json:"ats_score"`
}
