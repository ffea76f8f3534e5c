package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "generated/u1_parsed.json", want: "generated/u1_parsed.json"},
		{name: "simple prefix", prefix: "root", key: "generated/u1_parsed.json", want: "root/generated/u1_parsed.json"},
		{name: "prefix trailing slash", prefix: "root/", key: "generated/u1_parsed.json", want: "root/generated/u1_parsed.json"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/generated/u1_parsed.json", want: "root/generated/u1_parsed.json"},
		{name: "nested prefix", prefix: "root/sub", key: "generated/u1_parsed.json", want: "root/sub/generated/u1_parsed.json"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
