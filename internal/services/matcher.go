package services

import "strings"

// MatchSkills classifies each required skill as found or missing in the
// resume text. A skill is found when the whole phrase occurs in the text,
// ignoring case, or failing that when every token of the phrase occurs
// somewhere in the text. Token positions are not checked, so "machine
// learning" matches a resume mentioning "machine" and "learning" apart.
//
// found and missing keep the order of required and are never nil. coverage
// is len(found)/len(required), or 0 when required is empty.
func MatchSkills(resumeText string, required []string) (found, missing []string, coverage float64) {
	resumeLower := strings.ToLower(resumeText)
	found = make([]string, 0, len(required))
	missing = make([]string, 0, len(required))

	for _, skill := range required {
		if skillPresent(resumeLower, strings.ToLower(skill)) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	if len(required) > 0 {
		coverage = float64(len(found)) / float64(len(required))
	}

	return found, missing, coverage
}

func skillPresent(resumeLower, skillLower string) bool {
	if strings.Contains(resumeLower, skillLower) {
		return true
	}

	for _, token := range strings.Fields(skillLower) {
		if !strings.Contains(resumeLower, token) {
			return false
		}
	}

	return true
}
