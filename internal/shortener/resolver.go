package shortener

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Resolver maps an incoming short code to its mapping for a redirect. It has
// no side effects on the store.
type Resolver struct {
	store  Repository
	logger *zap.Logger
}

// NewResolver creates a new resolver.
func NewResolver(store Repository, logger *zap.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve looks up code verbatim; resolution is case-sensitive. Store errors
// are logged and reported as ErrNotFound, indistinguishable from a code that
// never existed.
func (r *Resolver) Resolve(ctx context.Context, code Code) (*Mapping, error) {
	mapping, err := r.store.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Error("mapping lookup failed",
				zap.String("code", string(code)),
				zap.Error(err),
			)
		}

		return nil, ErrNotFound
	}

	return mapping, nil
}
