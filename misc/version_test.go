package misc

import "testing"

func TestBuildInfo(t *testing.T) {
	if got := GetAppName(); got != "cssync" {
		t.Errorf("GetAppName() = %q, want cssync", got)
	}
	if GetVersion() == "" {
		t.Error("GetVersion() is empty")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() is empty")
	}
}
