// Package version reports the agentdesk build version.
package version

// Set at build time with -ldflags "-X github.com/rshade/agentdesk/pkg/version.version=...".
//
//nolint:gochecknoglobals // Build-time injected values.
var (
	version = "dev"
	commit  = ""
)

// GetVersion returns the build version, suffixed with the short commit
// when one was injected.
func GetVersion() string {
	if commit == "" {
		return version
	}
	short := commit
	if len(short) > 7 { //nolint:mnd // Conventional short SHA length.
		short = short[:7]
	}
	return version + " (" + short + ")"
}
