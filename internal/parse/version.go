// internal/parse/version.go
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// versionPattern matches the leading line of a `stat` response.
// Capture groups are major, minor, patch.
var versionPattern = regexp.MustCompile(`(?i)^Zookeeper version: ([^.]+)\.([^.]+)\.([^-]+)`)

// Version is a parsed major.minor.patch tuple.
// Segments compare numerically, never lexicographically.
type Version struct {
	Major int
	Minor int
	Patch int
}

// mntrThreshold: `mntr` exists strictly after this release.
var mntrThreshold = Version{Major: 3, Minor: 4, Patch: 0}

// connectionsThreshold: `stat` carries an explicit Connections field
// from this release on.
var connectionsThreshold = Version{Major: 3, Minor: 4, Patch: 4}

// ParseVersion parses a dotted major.minor.patch string.
// ok is false when the shape is wrong or any segment is not an integer.
func ParseVersion(s string) (Version, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, false
	}

	var v Version
	for i, dst := range []*int{&v.Major, &v.Minor, &v.Patch} {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Version{}, false
		}
		*dst = n
	}
	return v, true
}

// After reports whether v is strictly newer than o.
func (v Version) After(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

// AtLeast reports whether v is o or newer.
func (v Version) AtLeast(o Version) bool {
	return v == o || v.After(o)
}

// SupportsMntr decides whether a server can be asked for `mntr`.
// An absent or unparsable version never gates in.
func SupportsMntr(version string) bool {
	v, ok := ParseVersion(version)
	return ok && v.After(mntrThreshold)
}

// matchVersionLine extracts the raw version segments from a stat header line.
func matchVersionLine(line string) (major, minor, patch string, ok bool) {
	m := versionPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}
