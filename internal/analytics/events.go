package analytics

import "time"

// Topics for link lifecycle events.
const (
	TopicLinkCreated  = "link.created"
	TopicLinkResolved = "link.resolved"
)

// LinkCreatedEvent represents an event emitted when a short link is created.
type LinkCreatedEvent struct {
	Code      string    `json:"code"`
	LongURL   string    `json:"longUrl"`
	Custom    bool      `json:"custom"`
	CreatedAt time.Time `json:"createdAt"`
	ClientIP  string    `json:"clientIp"`
	UserAgent string    `json:"userAgent"`
}

// LinkResolvedEvent represents an event emitted when a short link is
// followed to its destination.
type LinkResolvedEvent struct {
	Code       string    `json:"code"`
	LongURL    string    `json:"longUrl"`
	ResolvedAt time.Time `json:"resolvedAt"`
	ClientIP   string    `json:"clientIp"`
	UserAgent  string    `json:"userAgent"`
	Referrer   string    `json:"referrer,omitempty"`
}
