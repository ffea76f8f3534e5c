package questions

import (
	"reflect"
	"testing"
)

func TestCleanSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "labeled compound entry",
			raw:  []string{"SKILLS: a: x, b: y"},
			want: []string{"x", "y"},
		},
		{
			name: "marker without labels",
			raw:  []string{"SKILLS: Go, PostgreSQL, Docker"},
			want: []string{"Go", "PostgreSQL", "Docker"},
		},
		{
			name: "no marker",
			raw:  []string{"languages: Go, tools: Terraform"},
			want: []string{"Go", "Terraform"},
		},
		{
			name: "order and duplicates preserved",
			raw:  []string{"SKILLS: Go", "SKILLS: Python, Go"},
			want: []string{"Go", "Python", "Go"},
		},
		{
			name: "empty pieces dropped",
			raw:  []string{"SKILLS: , ,Go, "},
			want: []string{"Go"},
		},
		{
			name: "whitespace-only entries",
			raw:  []string{"   ", "\t"},
			want: []string{},
		},
		{
			name: "marker is case-sensitive",
			raw:  []string{"skills: Go"},
			want: []string{"Go"},
		},
		{
			name: "empty input",
			raw:  nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanSkills(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CleanSkills(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
