// Package buildinfo carries values stamped at link time by .ci/build.go.
package buildinfo

var (
	Version = "0.1.0-unreleased"
	GitSHA  = ""
)

// String returns the version followed by the short commit, if known.
func String() string {
	if len(GitSHA) >= 7 {
		return Version + " (" + GitSHA[:7] + ")"
	}
	return Version
}
