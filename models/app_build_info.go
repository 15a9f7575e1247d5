package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo is the version metadata stamped into a binary with -ldflags.
// It is read-only once built; missing values read as "N/A".
type AppBuildInfo struct {
	v VersionResponse
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return notAvailable
		}
		return s
	}

	return AppBuildInfo{v: VersionResponse{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}}
}

func (a AppBuildInfo) Version() string { return a.v.Version }
func (a AppBuildInfo) Date() string    { return a.v.Date }
func (a AppBuildInfo) Commit() string  { return a.v.Commit }

// Response is the body of GET /version.
func (a AppBuildInfo) Response() VersionResponse {
	return a.v
}

// String formats the info for startup banners, e.g. "1.4.0 (commit abc123, built 2026-05-01)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", a.v.Version, a.v.Commit, a.v.Date)
}
