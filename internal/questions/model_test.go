package questions

import (
	"encoding/json"
	"testing"
)

func TestParsedResumeProjectsDecoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string projects", raw: `{"skills":["Go"],"projects":"built a CLI"}`, want: "built a CLI"},
		{name: "absent projects", raw: `{"skills":["Go"]}`, want: ""},
		{name: "null projects", raw: `{"skills":["Go"],"projects":null}`, want: ""},
		{name: "structured projects kept as raw JSON", raw: `{"skills":["Go"],"projects":["a","b"]}`, want: `["a","b"]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var record ParsedResume
			if err := json.Unmarshal([]byte(tt.raw), &record); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := string(record.Projects); got != tt.want {
				t.Fatalf("projects = %q, want %q", got, tt.want)
			}
		})
	}
}
