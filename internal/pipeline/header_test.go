package pipeline

import "testing"

func TestConvertHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		numbering HeaderNumbering
		want      string
	}{
		{"chapter", `\# Intro`, Numbered, `\chapter{Intro}`},
		{"section", `\#\# Part`, Numbered, `\section{Part}`},
		{"subsection", `\#\#\# Sub`, Numbered, `\subsection{Sub}`},
		{"subsubsection", `\#\#\#\# Deep`, Numbered, `\subsubsection{Deep}`},
		{"fifth level is bold", `\#\#\#\#\# Five`, Numbered, "\n\\textbf{Five}\n"},
		{"zero value is numbered", `\# A`, "", `\chapter{A}`},
		{
			name:      "unnumbered adds toc entry",
			in:        `\#\# Part`,
			numbering: Unnumbered,
			want:      "\\section*{Part}\n\\addcontentsline{toc}{section}{Part}",
		},
		{"closing hashes dropped", `\#\# Part \#\#`, Numbered, `\section{Part}`},
		{"needs whitespace after marker", `\#tag`, Numbered, `\#tag`},
		{"only at line start", `a \# b`, Numbered, `a \# b`},
		{"leading spaces allowed", `  \# A`, Numbered, `\chapter{A}`},
		{"multiline", "\\# A\ntext\n\\#\\# B", Numbered, "\\chapter{A}\ntext\n\\section{B}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := convertHeaders(tt.in, tt.numbering); got != tt.want {
				t.Errorf("convertHeaders(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
