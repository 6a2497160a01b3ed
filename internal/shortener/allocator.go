package shortener

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CodeGenerator produces random candidate codes for auto-allocation.
type CodeGenerator func() string

// DefaultMaxAttempts bounds the generation retry loop.
const DefaultMaxAttempts = 5

// Allocator produces exactly one unique short code per request, either from
// a caller-supplied candidate or auto-generated, and persists the resulting
// mapping. Nothing is persisted on any failure path.
type Allocator struct {
	store        Repository
	generateCode CodeGenerator
	maxAttempts  int
	logger       *zap.Logger
}

// NewAllocator creates a new allocator with the default attempt ceiling.
func NewAllocator(store Repository, generator CodeGenerator, logger *zap.Logger) *Allocator {
	return &Allocator{
		store:        store,
		generateCode: generator,
		maxAttempts:  DefaultMaxAttempts,
		logger:       logger,
	}
}

// Allocate validates longURL, chooses a code (the normalized customCode when
// one is supplied, a generated one otherwise) and inserts the mapping.
func (a *Allocator) Allocate(ctx context.Context, longURL, customCode string) (*Mapping, error) {
	if err := ValidateLongURL(longURL); err != nil {
		return nil, err
	}

	if strings.TrimSpace(customCode) != "" {
		return a.allocateCustom(ctx, longURL, customCode)
	}

	return a.allocateGenerated(ctx, longURL)
}

func (a *Allocator) allocateCustom(ctx context.Context, longURL, customCode string) (*Mapping, error) {
	code, err := NormalizeCode(customCode)
	if err != nil {
		return nil, err
	}

	// Advisory fast path; the store's uniqueness constraint remains the
	// authority at insert time.
	taken, err := a.store.Exists(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("checking code availability: %w", err)
	}

	if taken {
		return nil, ErrCodeTaken
	}

	return a.insert(ctx, code, longURL)
}

func (a *Allocator) allocateGenerated(ctx context.Context, longURL string) (*Mapping, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		code := Code(a.generateCode())

		taken, err := a.store.Exists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("checking code availability: %w", err)
		}

		if taken {
			a.logger.Debug("generated code collided",
				zap.String("code", string(code)),
				zap.Int("attempt", attempt),
			)

			continue
		}

		mapping, err := a.insert(ctx, code, longURL)
		if errors.Is(err, ErrCodeTaken) {
			// Lost a race for this candidate; counts as a collision.
			continue
		}

		return mapping, err
	}

	return nil, ErrExhausted
}

func (a *Allocator) insert(ctx context.Context, code Code, longURL string) (*Mapping, error) {
	mapping := &Mapping{
		Code:      code,
		LongURL:   longURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := a.store.Insert(ctx, mapping); err != nil {
		return nil, err
	}

	return mapping, nil
}
