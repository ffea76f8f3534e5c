package questions

import (
	"reflect"
	"testing"
)

func TestParseQuestions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "mixed enumeration markers",
			raw:  "1. What is X?\n2) Explain Y\n- Describe Z",
			want: []string{"What is X?", "Explain Y", "Describe Z"},
		},
		{
			name: "bullet glyph and padding",
			raw:  "  ● How does Go schedule goroutines?  \n\n10. Design a cache.",
			want: []string{"How does Go schedule goroutines?", "Design a cache."},
		},
		{
			name: "blank and marker-only lines dropped",
			raw:  "1.\n\n   \n2. Real question",
			want: []string{"Real question"},
		},
		{
			name: "unnumbered prose passes through",
			raw:  "Tell me about your projects.",
			want: []string{"Tell me about your projects."},
		},
		{
			name: "no count enforcement",
			raw:  "1. one\n2. two\n3. three",
			want: []string{"one", "two", "three"},
		},
		{
			name: "empty output",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseQuestions(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseQuestions(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
