package store

import (
	"context"

	"github.com/Gauraangst/shorty/internal/identity"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUserStore persists identity profiles, keyed on the provider's
// user id.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewPostgresUserStore creates a new PostgreSQL-backed user store.
func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

// Upsert inserts the profile or, when the provider user id is already
// present, updates the stored email and full name.
func (p *PostgresUserStore) Upsert(ctx context.Context, user *identity.User) (*identity.User, error) {
	query := `
		INSERT INTO users (provider_user_id, email, full_name, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (provider_user_id)
		DO UPDATE SET email = EXCLUDED.email, full_name = EXCLUDED.full_name, updated_at = now()
		RETURNING provider_user_id, email, full_name
	`

	var stored identity.User

	err := p.pool.QueryRow(ctx, query,
		user.ProviderUserID,
		user.Email,
		user.FullName,
	).Scan(
		&stored.ProviderUserID,
		&stored.Email,
		&stored.FullName,
	)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

var _ identity.Repository = (*PostgresUserStore)(nil)
