package shortener

import "errors"

var (
	// ErrNotFound is returned when no mapping exists for a code.
	ErrNotFound = errors.New("mapping not found")

	// ErrCodeTaken is returned when a short code is already in use. Stores
	// return it from Insert on a uniqueness violation; that signal, not the
	// advisory existence pre-check, decides conflicts.
	ErrCodeTaken = errors.New("short code already taken")

	// ErrInvalidURL is returned when a long URL is not an absolute URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidCode is returned when a custom code fails length or charset
	// validation.
	ErrInvalidCode = errors.New("invalid short code")

	// ErrExhausted is returned when code generation hit the attempt ceiling
	// without finding a free code.
	ErrExhausted = errors.New("exhausted short code generation attempts")
)
