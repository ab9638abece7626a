package internet

import (
	"regexp"
	"strings"
)

var (
	// Anchored to the end so they classify the last character of a prefix;
	// a single-character candidate matches the same way.
	vowelClass     = regexp.MustCompile(`[aeiouAEIOU]$`)
	consonantClass = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ]$`)

	defaultPasswordPattern = regexp.MustCompile(`\w`)
)

// Password builds a password by rejection sampling: candidates are drawn one
// character at a time from the printable ASCII range [33, 127) and appended
// only if they satisfy the active constraint.
//
// When memorable is true the caller-supplied pattern is ignored and the
// constraint alternates character classes for pronounceability: a prefix
// ending in a consonant requires a vowel next, anything else requires a
// consonant; candidates are lowercased before testing. When memorable is
// false the candidate must match pattern, defaulting to \w when nil.
//
// A prefix already at or beyond the requested length is returned unchanged,
// with no truncation. Retries are unbounded, so a pattern that no character
// in [33, 127) can satisfy makes Password loop forever; supplying a
// satisfiable constraint is the caller's responsibility.
func (g *Generator) Password(length int, memorable bool, pattern *regexp.Regexp, prefix string) string {
	if pattern == nil {
		pattern = defaultPasswordPattern
	}

	for len(prefix) < length {
		active := pattern
		if memorable {
			if consonantClass.MatchString(prefix) {
				active = vowelClass
			} else {
				active = consonantClass
			}
		}

		candidate := string(rune(g.rand.Int(93) + 33))
		if memorable {
			candidate = strings.ToLower(candidate)
		}
		if !active.MatchString(candidate) {
			continue
		}
		prefix += candidate
	}
	return prefix
}
