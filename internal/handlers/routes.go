package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers all short link and user routes.
func RegisterRoutes(api huma.API, links *LinkHandler, users *UserHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/shorten",
		Summary:     "Create short link",
		Description: "Creates a short link for the given URL, with an optional custom code.",
		Tags:        []string{"Links"},
	}, links.Shorten)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/users/sync",
		Summary:     "Sync user profile",
		Description: "Creates or updates the profile for the authenticated user.",
		Tags:        []string{"Users"},
	}, users.SyncUser)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Follow short link",
		Description: "Redirects to the original URL associated with the short code.",
		Tags:        []string{"Links"},
	}, links.Redirect)
}
