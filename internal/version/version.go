// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the build's VCS revision without a hand-maintained version constant.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/epsagon/clear-lambda-storage/internal/meta"
)

// String returns a "name revision" line derived from build info.
// It falls back to "dev" when the binary was built outside a VCS checkout.
func String() string {
	return fmt.Sprintf("%s %s", meta.AppName, revision())
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var rev string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if rev == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", rev)
	}
	return rev
}
