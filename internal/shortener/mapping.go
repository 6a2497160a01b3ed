package shortener

import "time"

// Code is a short link code, the path segment of a short URL.
type Code string

// Mapping is the persisted association between a short code and a long URL.
// Mappings are immutable once created.
type Mapping struct {
	Code      Code
	LongURL   string
	CreatedAt time.Time
}
