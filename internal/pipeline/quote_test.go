package pipeline

import "testing"

func TestConvertQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		style QuoteStyle
		want  string
	}{
		{
			name:  "english double",
			in:    `He said "hi" twice`,
			style: QuoteEnglish,
			want:  "He said ``hi'' twice",
		},
		{
			name:  "french double",
			in:    `He said "hi" twice`,
			style: QuoteFrench,
			want:  `He said \enquote{hi} twice`,
		},
		{
			name:  "english single keeps apostrophes",
			in:    `it's 'x' ok`,
			style: QuoteEnglish,
			want:  `it's \textquoteleft{}x\textquoteright{} ok`,
		},
		{
			name:  "french single",
			in:    `'x'`,
			style: QuoteFrench,
			want:  `\enquote*{x}`,
		},
		{
			name:  "english double ending with punctuation",
			in:    `"hi."`,
			style: QuoteEnglish,
			want:  "``hi.''",
		},
		{
			name:  "greedy within a line",
			in:    `"a" and "b"`,
			style: QuoteFrench,
			want:  `\enquote{a" and "b}`,
		},
		{
			name:  "does not cross lines",
			in:    "\"a\nb\"",
			style: QuoteEnglish,
			want:  "\"a\nb\"",
		},
		{
			name:  "unbalanced left alone",
			in:    `a " b`,
			style: QuoteEnglish,
			want:  `a " b`,
		},
		{
			name:  "zero value style is english",
			in:    `"x"`,
			want:  "``x''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := convertQuotes(tt.in, tt.style); got != tt.want {
				t.Errorf("convertQuotes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertBlockQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single run",
			in:   "> a\n> b\nc",
			want: "\\begin{quotation}\n  a\n  b\n\\end{quotation}\nc",
		},
		{
			name: "two runs",
			in:   ">a\n\n>b",
			want: "\\begin{quotation}\n a\n\\end{quotation}\n\n\\begin{quotation}\n b\n\\end{quotation}",
		},
		{
			name: "marker alone is not a quote",
			in:   ">\nx",
			want: ">\nx",
		},
		{
			name: "marker mid line ignored",
			in:   "a > b",
			want: "a > b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := convertBlockQuotes(tt.in); got != tt.want {
				t.Errorf("convertBlockQuotes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
