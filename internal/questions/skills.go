package questions

import "strings"

const skillsMarker = "SKILLS:"

// CleanSkills flattens raw skill entries into atomic skill tokens.
// A single raw entry may encode several comma-separated skills, each
// optionally prefixed by a label and colon, e.g.
// "SKILLS: languages: Go, databases: PostgreSQL". Order is preserved
// and duplicates are kept.
func CleanSkills(raw []string) []string {
	cleaned := make([]string, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimPrefix(entry, skillsMarker)
		for _, part := range strings.Split(entry, ",") {
			segments := strings.Split(part, ":")
			token := strings.TrimSpace(segments[len(segments)-1])
			if token != "" {
				cleaned = append(cleaned, token)
			}
		}
	}
	return cleaned
}
