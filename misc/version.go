// Package misc keeps build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	version = "dev"
	githash = "unknown"
	appname = ""
)

// GetVersion returns version string set at build time.
func GetVersion() string {
	return version
}

// GetGitHash returns commit hash set at build time.
func GetGitHash() string {
	return githash
}

// GetAppName returns program name, if not set at build time - executable name
// without extension.
func GetAppName() string {
	if len(appname) > 0 {
		return appname
	}
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}
