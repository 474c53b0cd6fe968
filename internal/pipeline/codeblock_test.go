package pipeline

import (
	"strings"
	"testing"
)

func TestParseCodeBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inner    string
		wantLang string
		wantBody string
	}{
		{"language and body", "go\nx := 1\n", "go", "x := 1"},
		{"no language", "\nplain\n", "", "plain"},
		{"padded language", "  python \nprint()\n", "python", "print()"},
		{"no newline", "inline", "", "inline"},
		{"keeps inner blank lines", "sh\na\n\nb\n", "sh", "a\n\nb"},
		{"only one trailing newline dropped", "go\nx\n\n", "go", "x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseCodeBlock(tt.inner)
			if got.lang != tt.wantLang || got.body != tt.wantBody {
				t.Errorf("parseCodeBlock(%q) = {%q %q}, want {%q %q}",
					tt.inner, got.lang, got.body, tt.wantLang, tt.wantBody)
			}
		})
	}
}

func TestRenderCodeBlock(t *testing.T) {
	t.Parallel()

	langs := NewLanguageSet("go", "python")

	t.Run("supported language uses minted", func(t *testing.T) {
		t.Parallel()

		got, highlighted := renderCodeBlock(codeBlock{lang: "Go", body: "x := 1"}, langs)
		want := "\\begin{listing}\n\\begin{minted}{go}\nx := 1\n\\end{minted}\n\\end{listing}"
		if !highlighted || got != want {
			t.Errorf("renderCodeBlock() = %q, %v; want %q, true", got, highlighted, want)
		}
	})

	t.Run("unknown language falls back to verbatim", func(t *testing.T) {
		t.Parallel()

		got, highlighted := renderCodeBlock(codeBlock{lang: "brainfudge", body: "+-"}, langs)
		want := "\\begin{verbatim}\n+-\n\\end{verbatim}"
		if highlighted || got != want {
			t.Errorf("renderCodeBlock() = %q, %v; want %q, false", got, highlighted, want)
		}
	})

	t.Run("hash in language name uses plain alias", func(t *testing.T) {
		t.Parallel()

		got, highlighted := renderCodeBlock(codeBlock{lang: "c#", body: "var x = 1;"}, DefaultLanguages())
		want := "\\begin{listing}\n\\begin{minted}{csharp}\nvar x = 1;\n\\end{minted}\n\\end{listing}"
		if !highlighted || got != want {
			t.Errorf("renderCodeBlock() = %q, %v; want %q, true", got, highlighted, want)
		}
	})

	t.Run("no language is verbatim", func(t *testing.T) {
		t.Parallel()

		got, _ := renderCodeBlock(codeBlock{body: "x"}, langs)
		if !strings.HasPrefix(got, "\\begin{verbatim}") {
			t.Errorf("renderCodeBlock() = %q, want verbatim", got)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		got, _ := renderCodeBlock(codeBlock{}, langs)
		if got != "\\begin{verbatim}\n\\end{verbatim}" {
			t.Errorf("renderCodeBlock() = %q", got)
		}
	})
}

func TestConvertCodeBlocks(t *testing.T) {
	t.Parallel()

	var stats Stats
	in := "before\n```go\na\n```\nmiddle\n```\nb\n```\nafter"
	got := convertCodeBlocks(in, NewLanguageSet("go"), &stats)

	if stats.Highlighted != 1 || stats.Verbatim != 1 {
		t.Errorf("stats = %+v, want 1 highlighted and 1 verbatim", stats)
	}
	if strings.Count(got, envStart) != 2 || strings.Count(got, envEnd) != 2 {
		t.Errorf("expected two marked environments in %q", got)
	}
	if !strings.HasPrefix(got, "before\n\n"+envStart) {
		t.Errorf("environment should start on its own line: %q", got)
	}
}

func TestConvertCodeBlocks_Unterminated(t *testing.T) {
	t.Parallel()

	var stats Stats
	in := "```go\nno closing fence"
	if got := convertCodeBlocks(in, NewLanguageSet("go"), &stats); got != in {
		t.Errorf("unterminated fence changed: %q", got)
	}
}
