package pipeline

import "testing"

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"first heading", "# Hello\n\n# Other", "Hello"},
		{"emphasis flattened", "# Real *title* here", "Real title here"},
		{"level two ignored", "## Sub\n\n# Main", "Main"},
		{"heading in code ignored", "```\n# not\n```\n\n# Real", "Real"},
		{"setext heading", "Title\n=====\n", "Title"},
		{"none", "just text", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExtractTitle(tt.markdown); got != tt.want {
				t.Errorf("ExtractTitle(%q) = %q, want %q", tt.markdown, got, tt.want)
			}
		})
	}
}
