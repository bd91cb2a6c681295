// Package misc keeps build information.
package misc

import (
	"path/filepath"
	"strings"
)

// Set at link time with -X.
var (
	appName = "cssync"
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns program name.
func GetAppName() string {
	return strings.TrimSuffix(filepath.Base(appName), filepath.Ext(appName))
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
