package cli

import (
	"runtime/debug"
	"testing"
)

func TestCurrentVersionInfoNoBuildInfo(t *testing.T) {
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
	t.Cleanup(func() { readBuildInfo = orig })

	info := currentVersionInfo()
	if info.Version != "devel" {
		t.Errorf("Version = %q, want devel", info.Version)
	}
	if info.ModulePath != defaultModulePath {
		t.Errorf("ModulePath = %q, want %q", info.ModulePath, defaultModulePath)
	}
}

func TestCurrentVersionInfoFromBuildInfo(t *testing.T) {
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.23.0",
			Main: debug.Module{
				Path:    "github.com/aidanlsb/preen",
				Version: "v0.3.0",
			},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.modified", Value: "false"},
			},
		}, true
	}
	t.Cleanup(func() { readBuildInfo = orig })

	info := currentVersionInfo()
	if info.Version != "v0.3.0" {
		t.Errorf("Version = %q, want v0.3.0", info.Version)
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want abc123", info.Commit)
	}
	if info.Modified {
		t.Error("Modified = true, want false")
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "devel"},
		{"(devel)", "devel"},
		{"v1.2.3", "v1.2.3"},
	}
	for _, tt := range tests {
		if got := normalizeVersion(tt.in); got != tt.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
