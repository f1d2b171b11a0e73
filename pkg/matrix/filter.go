package matrix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Defaults for the supported interpreter range.
const (
	DefaultMajor      = 3
	DefaultMinMinor   = 7
	DefaultConstraint = ">= 3.7, < 4"
)

// Rejection reasons returned by [Filter.Qualify].
var (
	ErrPreRelease  = errors.New("pre-release marker")
	ErrNoPrefix    = errors.New("missing v prefix")
	ErrMalformed   = errors.New("not a major.minor version")
	ErrUnsupported = errors.New("unsupported version")
)

// Filter decides whether a tag names a supported release.
// On success it returns the normalized "major.minor" string; otherwise an
// error wrapping one of the rejection reasons above.
type Filter interface {
	Qualify(tag string) (string, error)
}

// preReleaseMarkers are matched as plain substrings anywhere in the tag.
var preReleaseMarkers = []string{"a", "b", "c", "rc", "-"}

// LexicalFilter qualifies tags with substring checks and truncation, without
// parsing them as versions.
type LexicalFilter struct {
	Major    int
	MinMinor int
}

// NewLexicalFilter returns a LexicalFilter accepting major == major and
// minor >= minMinor.
func NewLexicalFilter(major, minMinor int) LexicalFilter {
	return LexicalFilter{Major: major, MinMinor: minMinor}
}

// Qualify applies the lexical rule to tag:
//
//  1. reject if tag contains any pre-release marker
//  2. require a "v" and drop its first occurrence
//  3. drop trailing characters until at most one "." remains
//  4. parse the two halves as integers and check the supported range
//
// The returned version is the truncated text itself, e.g. "v3.10.4" → "3.10".
func (f LexicalFilter) Qualify(tag string) (string, error) {
	for _, m := range preReleaseMarkers {
		if strings.Contains(tag, m) {
			return "", fmt.Errorf("%w: contains %q", ErrPreRelease, m)
		}
	}
	if !strings.Contains(tag, "v") {
		return "", ErrNoPrefix
	}

	short := strings.Replace(tag, "v", "", 1)
	for strings.Count(short, ".") > 1 {
		short = short[:len(short)-1]
	}

	majorText, minorText, ok := strings.Cut(short, ".")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMalformed, short)
	}
	major, err := strconv.Atoi(majorText)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformed, short)
	}
	minor, err := strconv.Atoi(minorText)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformed, short)
	}

	if major != f.Major || minor < f.MinMinor {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, short)
	}
	return short, nil
}

// SemverFilter qualifies tags by parsing them as semantic versions.
// Unlike LexicalFilter it accepts final releases regardless of which
// letters appear elsewhere in the tag, and formats the version itself.
type SemverFilter struct {
	constraint *semver.Constraints
}

// NewSemverFilter returns a SemverFilter checking versions against
// constraint (Masterminds syntax, e.g. ">= 3.7, < 4").
func NewSemverFilter(constraint string) (*SemverFilter, error) {
	if constraint == "" {
		constraint = DefaultConstraint
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("parse constraint %q: %w", constraint, err)
	}
	return &SemverFilter{constraint: c}, nil
}

// Qualify parses tag (which must start with "v") and returns "major.minor"
// for final releases satisfying the constraint.
func (f *SemverFilter) Qualify(tag string) (string, error) {
	if !strings.HasPrefix(tag, "v") {
		return "", ErrNoPrefix
	}
	v, err := semver.NewVersion(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if v.Prerelease() != "" {
		return "", fmt.Errorf("%w: %s", ErrPreRelease, v.Prerelease())
	}
	if !f.constraint.Check(v) {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, v)
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor()), nil
}

var (
	_ Filter = LexicalFilter{}
	_ Filter = (*SemverFilter)(nil)
)
