package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCleanWritesInPlace(t *testing.T) {
	path := writeTempFile(t, "note.md", "a   \n\n\n\nb\t\n")

	origWrite, origNoHistory := cleanWrite, cleanNoHistory
	cleanWrite, cleanNoHistory = true, true
	t.Cleanup(func() { cleanWrite, cleanNoHistory = origWrite, origNoHistory })

	if err := runClean(cleanCmd, []string{path}); err != nil {
		t.Fatalf("runClean: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\n\nb\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestRunCleanPreservesFrontmatter(t *testing.T) {
	content := "---\ntitle: Keep Me   \n---\nbody   \n"
	path := writeTempFile(t, "note.md", content)

	origWrite, origNoHistory := cleanWrite, cleanNoHistory
	cleanWrite, cleanNoHistory = true, true
	t.Cleanup(func() { cleanWrite, cleanNoHistory = origWrite, origNoHistory })

	if err := runClean(cleanCmd, []string{path}); err != nil {
		t.Fatalf("runClean: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "---\ntitle: Keep Me   \n---\nbody\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestRunCleanAlreadyCleanLeavesFileAlone(t *testing.T) {
	content := "clean\n\ntext\n"
	path := writeTempFile(t, "note.md", content)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	before := info.ModTime()

	origWrite, origNoHistory := cleanWrite, cleanNoHistory
	cleanWrite, cleanNoHistory = true, true
	t.Cleanup(func() { cleanWrite, cleanNoHistory = origWrite, origNoHistory })

	if err := runClean(cleanCmd, []string{path}); err != nil {
		t.Fatalf("runClean: %v", err)
	}

	info, err = os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(before) {
		t.Error("already-clean file was rewritten")
	}
}

func TestRunCleanMissingFile(t *testing.T) {
	origWrite := cleanWrite
	cleanWrite = false
	t.Cleanup(func() { cleanWrite = origWrite })

	err := runClean(cleanCmd, []string{filepath.Join(t.TempDir(), "missing.md")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"a", 1},
		{"a\n", 2},
		{"a\nb\nc", 3},
	}
	for _, tt := range tests {
		if got := lineCount(tt.in); got != tt.want {
			t.Errorf("lineCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
