package store

import (
	"context"
	"errors"

	"github.com/Gauraangst/shorty/internal/shortener"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation.
const uniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of shortener.Repository. The
// mappings table carries a unique constraint on short_code; Insert maps its
// violation to shortener.ErrCodeTaken, which makes the database the
// authority on code uniqueness.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed mapping store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Exists(ctx context.Context, code shortener.Code) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM mappings WHERE short_code = $1)`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresStore) Insert(ctx context.Context, mapping *shortener.Mapping) error {
	query := `
		INSERT INTO mappings (short_code, long_url, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := p.pool.Exec(ctx, query,
		string(mapping.Code),
		mapping.LongURL,
		mapping.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return shortener.ErrCodeTaken
	}

	return err
}

func (p *PostgresStore) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	query := `
		SELECT short_code, long_url, created_at
		FROM mappings
		WHERE short_code = $1
	`

	var mapping shortener.Mapping

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(
		&mapping.Code,
		&mapping.LongURL,
		&mapping.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &mapping, nil
}

var _ shortener.Repository = (*PostgresStore)(nil)
