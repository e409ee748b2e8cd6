package analyzer

import "strings"

// Version selects compatibility behaviour of the stages around the
// phonetic filter.
//
//   - From 2.4, "ab.cd." tokens that older grammars typed as acronyms are
//     emitted as hosts.
//   - From 2.9, the stop filter preserves position increments of dropped
//     words.
type Version string

const (
	Version23 Version = "2.3"
	Version24 Version = "2.4"
	Version29 Version = "2.9"
	Version30 Version = "3.0"

	VersionCurrent = Version30
)

var versionOrder = map[Version]int{
	Version23: 23,
	Version24: 24,
	Version29: 29,
	Version30: 30,
}

// ParseVersion resolves a version tag. The second result is false when the
// tag is unknown.
func ParseVersion(tag string) (Version, bool) {
	v := Version(strings.TrimSpace(tag))
	return v, v.Known()
}

// Known reports whether v is a recognised tag.
func (v Version) Known() bool {
	_, ok := versionOrder[v]
	return ok
}

// OnOrAfter reports whether v is at least other. Unknown versions are
// treated as VersionCurrent.
func (v Version) OnOrAfter(other Version) bool {
	return v.rank() >= other.rank()
}

// ReplaceInvalidAcronym reports whether "ab.cd." tokens become hosts.
func (v Version) ReplaceInvalidAcronym() bool {
	return v.OnOrAfter(Version24)
}

// EnablePositionIncrements reports whether the stop filter keeps gaps.
func (v Version) EnablePositionIncrements() bool {
	return v.OnOrAfter(Version29)
}

func (v Version) rank() int {
	if r, ok := versionOrder[v]; ok {
		return r
	}
	return versionOrder[VersionCurrent]
}
