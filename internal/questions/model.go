package questions

import "encoding/json"

// ParsedResume is the per-user record the upstream résumé parser writes
// to object storage under generated/{userId}_parsed.json.
type ParsedResume struct {
	Skills   []string    `json:"skills"`
	Projects LooseString `json:"projects"`
}

// LooseString decodes a JSON string as-is and carries any other JSON
// value as its raw text. Parser output has been observed with both a
// plain string and a structured value in the projects field.
type LooseString string

func (l *LooseString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = LooseString(s)
		return nil
	}
	if string(data) == "null" {
		*l = ""
		return nil
	}
	*l = LooseString(data)
	return nil
}

// Result is the successful response payload. SkillsUsed echoes the
// exact cleaned skill sequence the prompt was built from.
type Result struct {
	Questions  []string `json:"questions"`
	SkillsUsed []string `json:"skills_used"`
}
