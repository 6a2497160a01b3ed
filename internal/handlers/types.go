package handlers

// ShortenRequest is the request body for creating a short link.
type ShortenRequest struct {
	Body struct {
		LongURL    string `doc:"The URL to shorten"                example:"https://example.com/very/long/path" json:"longUrl,omitempty"`
		CustomCode string `doc:"Optional custom short code"        example:"my-link"                            json:"customCode,omitempty"`
	}
}

// ShortenResponse is the response for a successfully created short link.
type ShortenResponse struct {
	Body struct {
		ShortURL string `doc:"The full short URL" example:"https://sho.rt/my-link" json:"shortUrl"`
	}
}

// RedirectRequest is the request for following a short link.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"abc123" path:"code"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}
