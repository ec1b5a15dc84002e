package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// ErrVersionParse indicates a version token that is not valid semver.
var ErrVersionParse = errors.New("unparseable version")

// JarName returns the artifact filename for a version, e.g.
// "pdfbox-app-2.0.27.jar".
func JarName(version string) string {
	return "pdfbox-app-" + version + ".jar"
}

// ParseVersion parses a version token under semantic-version rules.
func ParseVersion(token string) (*semver.Version, error) {
	v, err := semver.NewVersion(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrVersionParse, token, err)
	}
	return v, nil
}

// Latest selects the maximum version under semantic-version ordering, so
// "2.10.0" beats "2.9.0" and "3.0.0-alpha2" loses to "3.0.0". An empty set
// fails with ErrNoVersions; a malformed token fails with ErrVersionParse.
func Latest(versions []string) (string, error) {
	if len(versions) == 0 {
		return "", ErrNoVersions
	}

	var (
		best      *semver.Version
		bestToken string
	)
	for _, token := range versions {
		v, err := ParseVersion(token)
		if err != nil {
			return "", err
		}
		if best == nil || best.LessThan(*v) {
			best = v
			bestToken = token
		}
	}
	return bestToken, nil
}

// JarURL constructs the download URL for a version's app jar:
// <base>/<version>/pdfbox-app-<version>.jar.
func JarURL(baseURL, version string) string {
	return strings.TrimRight(baseURL, "/") + "/" + version + "/" + JarName(version)
}

// ChecksumURL is the companion SHA-512 digest for a jar URL.
func ChecksumURL(jarURL string) string {
	return jarURL + ".sha512"
}
