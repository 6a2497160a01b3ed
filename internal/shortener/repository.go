package shortener

import "context"

// Repository defines the interface for mapping storage. Insert must enforce
// uniqueness of the code atomically and return ErrCodeTaken on conflict;
// GetByCode returns ErrNotFound when no mapping exists.
type Repository interface {
	Exists(ctx context.Context, code Code) (bool, error)
	Insert(ctx context.Context, mapping *Mapping) error
	GetByCode(ctx context.Context, code Code) (*Mapping, error)
}
