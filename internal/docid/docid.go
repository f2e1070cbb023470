// Package docid derives stable identifiers for documents from their file
// paths, so history lookups tolerate case and spacing differences.
package docid

import (
	"path/filepath"
	"strings"

	goslug "github.com/gosimple/slug"
)

// FromPath converts a file path to a document ID.
//
// It strips a trailing ".md", normalizes path separators, and slugifies
// each path component: "Notes/My File.md" -> "notes/my-file". Absolute and
// relative forms of the same path produce the same ID only if the caller
// normalizes them first; FromPath does not resolve the filesystem.
func FromPath(path string) string {
	p := filepath.ToSlash(path)
	p = strings.TrimSuffix(p, ".md")
	p = strings.Trim(p, "/")

	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		slugged := goslug.Make(part)
		if slugged == "" {
			slugged = strings.ToLower(strings.ReplaceAll(part, " ", "-"))
		}
		out = append(out, slugged)
	}
	return strings.Join(out, "/")
}
