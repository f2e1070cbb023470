package editor

import (
	"strings"
	"testing"
)

func TestCleanDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain document",
			in:   "a   \n\n\n\nb\t\n",
			want: "a\n\nb\n",
		},
		{
			name: "frontmatter held verbatim",
			in:   "---\ntitle: x   \n---\nbody   \n\n\nend\n",
			want: "---\ntitle: x   \n---\nbody\n\nend\n",
		},
		{
			name: "frontmatter only",
			in:   "---\ntitle: x\n---",
			want: "---\ntitle: x\n---",
		},
		{
			name: "unclosed frontmatter cleaned as text",
			in:   "---\ntitle: x   \nbody",
			want: "---\ntitle: x\nbody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanDocument(tt.in); got != tt.want {
				t.Fatalf("CleanDocument(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanDocumentFrontmatterBytesUnchanged(t *testing.T) {
	in := "---\ntitle: Notes   \ntags: [a, b]\t\n---\ncontent   \n"
	out := CleanDocument(in)

	inLines := strings.Split(in, "\n")
	outLines := strings.Split(out, "\n")
	for i := 0; i < 4; i++ {
		if outLines[i] != inLines[i] {
			t.Errorf("frontmatter line %d changed: %q -> %q", i, inLines[i], outLines[i])
		}
	}
}

func TestCleanDocumentIdempotent(t *testing.T) {
	inputs := []string{
		"---\ntitle: x\n---\nbody   \n\n\nend\n",
		"a   \n\nb\n",
		"",
	}
	for _, in := range inputs {
		once := CleanDocument(in)
		if twice := CleanDocument(once); twice != once {
			t.Errorf("CleanDocument not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
