package rules

import "github.com/Masterminds/semver/v3"

// CurrentSchemaVersion is the latest Custom Elements Manifest schema version.
const CurrentSchemaVersion = "2.1.0"

// IsAtLeast reports whether current is the same release as latest or newer.
// Components are compared numerically, major first. A pre-release of the
// same numeric version is not considered at least the release. Versions that
// do not parse are never at least anything.
func IsAtLeast(current, latest string) bool {
	cur, err := semver.NewVersion(current)
	if err != nil {
		return false
	}
	lat, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}

	if cur.Major() != lat.Major() {
		return cur.Major() > lat.Major()
	}
	if cur.Minor() != lat.Minor() {
		return cur.Minor() > lat.Minor()
	}
	if cur.Patch() != lat.Patch() {
		return cur.Patch() > lat.Patch()
	}
	return cur.Prerelease() == ""
}
