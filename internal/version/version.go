// Package version holds the SDK's own version and compares the dotted versions Mastodon
// servers report.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// SDK is the version of this module sent in the User-Agent header.
const SDK = "0.4.0"

// UserAgent returns the User-Agent sent with every request.
func UserAgent() string {
	return fmt.Sprintf("mastowatch-go/%s (%s; %s/%s)", SDK, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

type Version struct {
	Major int
	Minor int
	Patch int
}

func New(major, minor, patch int) *Version {
	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) Equal(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor && v.Patch == other.Patch
}

func (v Version) GreaterThan(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}

	return v.Patch > other.Patch
}

// ParseVersion parses a server version such as "4.3.2", "4.4.0-beta.1" or
// "4.2.10+glitch (compatible; Iceshrimp 2023.12)". Anything after the patch number is ignored.
func ParseVersion(version string) (*Version, error) {
	core := version
	if i := strings.IndexAny(core, "-+ "); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid version %s", version)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version component %s: %w", part, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid version component %s: cannot be negative", part)
		}
		nums[i] = n
	}

	return New(nums[0], nums[1], nums[2]), nil
}

func IsVersionGreaterOrEqual(a, b string) (bool, error) {
	versionA, err := ParseVersion(a)
	if err != nil {
		return false, err
	}

	versionB, err := ParseVersion(b)
	if err != nil {
		return false, err
	}
	return versionA.Equal(*versionB) || versionA.GreaterThan(*versionB), nil
}
