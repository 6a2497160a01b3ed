package store

import (
	"context"
	"fmt"

	"github.com/Gauraangst/shorty/internal/analytics"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres persists analytics events into the link_events table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) SaveLinkCreated(ctx context.Context, event *analytics.LinkCreatedEvent) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO link_events (event_type, short_code, long_url, occurred_at, client_ip, user_agent)
		 VALUES ('created', $1, $2, $3, $4, $5)`,
		event.Code, event.LongURL, event.CreatedAt, event.ClientIP, event.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("saving link created event: %w", err)
	}

	return nil
}

func (p *Postgres) SaveLinkResolved(ctx context.Context, event *analytics.LinkResolvedEvent) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO link_events (event_type, short_code, long_url, occurred_at, client_ip, user_agent, referrer)
		 VALUES ('resolved', $1, $2, $3, $4, $5, $6)`,
		event.Code, event.LongURL, event.ResolvedAt, event.ClientIP, event.UserAgent, event.Referrer,
	)
	if err != nil {
		return fmt.Errorf("saving link resolved event: %w", err)
	}

	return nil
}
