// Package version compares Scour's build version against the cleaning
// service it talks to.
package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinServiceVersion is the oldest cleaning-service release the dashboard
// understands. Older services lack the favorites endpoint.
const MinServiceVersion = "0.4.0"

var goInstallRegexp = regexp.MustCompile(`^v?\d+\.\d+\.\d+-\d+\.\d{14}-[0-9a-f]{12}$`)

// Normalize trims whitespace and a leading "v".
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimPrefix(trimmed, "v")
}

// IsDevelopment reports whether the version string comes from a local or
// go-install build rather than a tagged release.
func IsDevelopment(raw string) bool {
	value := strings.TrimSpace(raw)
	if value == "" {
		return true
	}
	lower := strings.ToLower(value)
	switch lower {
	case "dev", "devel", "unknown":
		return true
	}
	if strings.Contains(lower, "dirty") {
		return true
	}
	return goInstallRegexp.MatchString(value)
}

func parseSemver(raw string) (*semver.Version, error) {
	normalized := Normalize(raw)
	if normalized == "" {
		return nil, semver.ErrInvalidSemVer
	}
	return semver.NewVersion(normalized)
}

// Compare compares two semantic versions. It returns -1, 0, or 1 when a is
// older than, equal to, or newer than b.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, err
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, err
	}
	return av.Compare(bv), nil
}

// CheckService verifies the reported service version against
// MinServiceVersion. Unparseable versions are treated as incompatible so the
// dashboard can warn instead of failing mid-session.
func CheckService(reported string) error {
	cmp, err := Compare(reported, MinServiceVersion)
	if err != nil {
		return fmt.Errorf("service version %q: %w", reported, err)
	}
	if cmp < 0 {
		return fmt.Errorf("service version %s is older than the minimum supported %s", Normalize(reported), MinServiceVersion)
	}
	return nil
}
