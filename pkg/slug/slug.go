package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	separator  string
	lowercase  bool
	stripChars string
	keepChars  string
	maxLength  int
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// Separator sets the string that replaces runs of unsafe characters.
// Default is "-".
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// Lowercase controls lowercase conversion. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) { c.lowercase = enabled }
}

// StripChars lists characters to remove outright instead of converting them
// into separators.
func StripChars(chars string) Option {
	return func(c *config) { c.stripChars = chars }
}

// Keep lists characters that pass through unchanged even though they are not
// alphanumeric, e.g. "._" for email local parts.
func Keep(chars string) Option {
	return func(c *config) { c.keepChars = chars }
}

// MaxLength truncates the result to n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Decomposes, drops combining marks, and recomposes: "café" becomes "cafe".
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts s into slug form according to the options.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.stripChars != "" {
		for _, ch := range cfg.stripChars {
			s = strings.ReplaceAll(s, string(ch), "")
		}
	}

	if normalized, _, err := transform.String(normalizer, s); err == nil {
		s = normalized
	}

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	runeCount := 0

	writeRune := func(r rune) {
		if pendingSep && b.Len() > 0 {
			b.WriteString(cfg.separator)
			runeCount += len([]rune(cfg.separator))
		}
		pendingSep = false
		b.WriteRune(r)
		runeCount++
	}

	for _, r := range s {
		if cfg.maxLength > 0 && runeCount >= cfg.maxLength {
			break
		}

		if cfg.lowercase {
			r = unicode.ToLower(r)
		}

		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			writeRune(r)
		case strings.ContainsRune(cfg.keepChars, r):
			writeRune(r)
		default:
			pendingSep = true
		}
	}

	result := b.String()
	if cfg.maxLength > 0 {
		if rs := []rune(result); len(rs) > cfg.maxLength {
			result = string(rs[:cfg.maxLength])
		}
	}
	return strings.TrimSuffix(result, cfg.separator)
}
