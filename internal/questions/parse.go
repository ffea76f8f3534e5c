package questions

import "strings"

// leadingMarkers is the set of enumeration characters models put in
// front of each question line: digits, list punctuation, a bullet
// glyph, and spaces.
const leadingMarkers = "0123456789.)-● "

// ParseQuestions splits raw model output into one question per line,
// stripping enumeration markers. Lines that are blank after stripping
// are dropped. Whatever count the model produced is passed through.
func ParseQuestions(raw string) []string {
	questions := []string{}
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, leadingMarkers))
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	return questions
}
