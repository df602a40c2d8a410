// Package build holds the version stamp injected at link time.
package build

import "fmt"

type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Short is the one-line form used by --version and man page footers.
// Unset fields fall back to "dev" and "unknown".
func (i Info) Short() string {
	version, commit := i.Version, i.Commit
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}

func RepoURL() string {
	return "https://github.com/bnema/subdivide"
}
