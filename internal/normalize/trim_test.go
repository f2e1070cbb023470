package normalize

import (
	"strings"
	"testing"
)

func TestTrimTrailing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo   ", "foo"},
		{"foo\t", "foo"},
		{"foo \t ", "foo"},
		{"  foo  ", "  foo"},
		{"   ", ""},
		{"", ""},
		{"foo", "foo"},
		{"foo\r", "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := TrimTrailing(tt.in); got != tt.want {
				t.Fatalf("TrimTrailing(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimTrailingIdempotent(t *testing.T) {
	for _, s := range []string{"foo  ", "  bar\t\t", "", "   ", "x"} {
		once := TrimTrailing(s)
		if twice := TrimTrailing(once); twice != once {
			t.Errorf("TrimTrailing not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "trailing whitespace stripped, final newline kept",
			in:   "line1   \nline2\t\n",
			want: "line1\nline2\n",
		},
		{
			name: "blank runs collapse",
			in:   "a\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "opener and closer rules apply",
			in:   "call(\n\n  arg,\n\n)",
			want: "call(\n  arg,\n)",
		},
		{
			name: "fence markers are ordinary text",
			in:   "```   \n\n\n```",
			want: "```\n\n```",
		},
		{
			name: "leading whitespace preserved",
			in:   "    indented   \n\tcode\t\n",
			want: "    indented\n\tcode\n",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Fatalf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"line1   \nline2\t\n",
		"a\n\n\n\nb",
		"call(\n\n)",
		"",
	}
	for _, in := range inputs {
		once := CleanText(in)
		if twice := CleanText(once); twice != once {
			t.Errorf("CleanText not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCleanBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "interior trimmed and collapsed",
			in:   "```js\ncode(   \n\n)\n```",
			want: "```js\ncode(\n)\n```",
		},
		{
			name: "fence lines untouched even with trailing whitespace",
			in:   "```js  \ncode  \n```  ",
			want: "```js  \ncode\n```  ",
		},
		{
			name: "blank runs inside block collapse",
			in:   "```\na\n\n\nb\n```",
			want: "```\na\n\nb\n```",
		},
		{
			name: "single line returned unchanged",
			in:   "```",
			want: "```",
		},
		{
			name: "empty string returned unchanged",
			in:   "",
			want: "",
		},
		{
			name: "two lines means empty interior",
			in:   "```\n```",
			want: "```\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanBlock(tt.in); got != tt.want {
				t.Fatalf("CleanBlock(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanBlockPreservesFenceLines(t *testing.T) {
	inputs := []string{
		"```python\nimport os   \n\n\nprint(x)\n```",
		"~~~  \ntext\n~~~",
		"```js\n```",
	}

	for _, in := range inputs {
		inLines := strings.Split(in, "\n")
		outLines := strings.Split(CleanBlock(in), "\n")

		if outLines[0] != inLines[0] {
			t.Errorf("first line changed: %q -> %q", inLines[0], outLines[0])
		}
		if outLines[len(outLines)-1] != inLines[len(inLines)-1] {
			t.Errorf("last line changed: %q -> %q",
				inLines[len(inLines)-1], outLines[len(outLines)-1])
		}
	}
}
