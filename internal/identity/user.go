package identity

import "context"

// User is a profile synced from the external identity provider.
type User struct {
	ProviderUserID string
	Email          string
	FullName       string
}

// Repository persists synced user profiles. Upsert inserts or updates the
// profile keyed on the provider user id and returns the stored row.
type Repository interface {
	Upsert(ctx context.Context, user *User) (*User, error)
}
