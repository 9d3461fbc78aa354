package usecase

import (
	"strings"
	"testing"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "anchor with distinct href",
			input: `<p>Hi <a href="http://x.co">there</a></p>`,
			want:  "Hi there (http://x.co)",
		},
		{
			name:  "anchor text equals href",
			input: `<p><a href="http://x.co">http://x.co</a></p>`,
			want:  "http://x.co",
		},
		{
			name:  "anchor without href",
			input: `<p>see <a>this</a></p>`,
			want:  "see this",
		},
		{
			name:  "anchor with empty href",
			input: `<p><a href="">label</a></p>`,
			want:  "label",
		},
		{
			name:  "paragraphs become lines",
			input: "<p>one</p><p>two</p>",
			want:  "one\ntwo",
		},
		{
			name:  "br becomes line break",
			input: "<p>one<br>two</p>",
			want:  "one\ntwo",
		},
		{
			name:  "whitespace-only lines dropped",
			input: "<p>   </p><p>kept</p>",
			want:  "kept",
		},
		{
			name:  "nested inline markup flattened",
			input: "<p><strong>bold</strong> and <em>italic</em></p>",
			want:  "bold and italic",
		},
		{
			name:  "malformed markup does not fail",
			input: "<p>unclosed <b>bold",
			want:  "unclosed bold",
		},
		{
			name:  "plain text passes through",
			input: "just text",
			want:  "just text",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanHTML(tt.input)
			if got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanHTMLStripsAllTags(t *testing.T) {
	inputs := []string{
		`<p>Hi <a href="http://x.co">there</a></p>`,
		`<div><span class="x">a</span><script>alert(1)</script>b</div>`,
		`<ul><li>one</li><li>two</li></ul>`,
	}
	for _, input := range inputs {
		got := CleanHTML(input)
		if strings.ContainsAny(got, "<>") {
			t.Errorf("CleanHTML(%q) = %q, still contains markup", input, got)
		}
	}
}
