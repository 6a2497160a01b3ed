package shortener

import (
	"net/url"
	"regexp"
	"strings"
)

// MinCodeLength is the minimum length of a caller-chosen short code.
const MinCodeLength = 3

// GeneratedAlphabet is the charset auto-generated codes are drawn from.
const GeneratedAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	codePattern        = regexp.MustCompile(`^[a-z0-9_-]+$`)
	internalWhitespace = regexp.MustCompile(`\s+`)
)

// ValidateLongURL checks that raw parses as an absolute URL with both a
// scheme and a host.
func ValidateLongURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// NormalizeCode sanitizes a caller-supplied candidate code: surrounding
// whitespace is trimmed, the code is lowercased, and internal whitespace is
// replaced with hyphens. The result must be at least MinCodeLength characters
// of [a-z0-9_-], otherwise ErrInvalidCode is returned.
func NormalizeCode(raw string) (Code, error) {
	code := strings.ToLower(strings.TrimSpace(raw))
	code = internalWhitespace.ReplaceAllString(code, "-")

	if len(code) < MinCodeLength || !codePattern.MatchString(code) {
		return "", ErrInvalidCode
	}

	return Code(code), nil
}
