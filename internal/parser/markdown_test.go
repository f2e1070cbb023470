package parser

import "testing"

func TestFenceCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "no fences",
			content: "# Heading\n\nparagraph\n",
			want:    0,
		},
		{
			name:    "one block",
			content: "before\n\n```js\ncode\n```\n\nafter\n",
			want:    1,
		},
		{
			name:    "two blocks",
			content: "```\na\n```\n\ntext\n\n~~~python\nb\n~~~\n",
			want:    2,
		},
		{
			name:    "empty content",
			content: "",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FenceCount(tt.content); got != tt.want {
				t.Fatalf("FenceCount(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}
