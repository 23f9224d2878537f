package utils

import (
	"github.com/Masterminds/semver/v3"
	"github.com/jwalton/gchalk"
)

// PrettyVersion returns a pretty colored version string for terminal printing.
// Pre-release and metadata parts are dimmed, invalid versions are printed as they are.
func PrettyVersion(version string) string {
	// we trim first to avoid broken colors
	if len(version) >= 22 {
		version = version[:18] + " …"
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}

	pretty := gchalk.Bold(v.Original())
	if v.Prerelease() != "" || v.Metadata() != "" {
		main, _ := v.SetPrerelease("")
		main, _ = main.SetMetadata("")
		pretty = gchalk.Bold(main.Original()) + gchalk.Dim(v.Original()[len(main.Original()):])
	}
	return pretty
}
