package store_test

import (
	"context"
	"testing"

	"github.com/Gauraangst/shorty/internal/shortener"
	"github.com/Gauraangst/shorty/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Insert(t *testing.T) {
	t.Run("inserts a mapping", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.Insert(context.Background(), &shortener.Mapping{
			Code:    "abc123",
			LongURL: "https://example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("rejects a duplicate code with ErrCodeTaken", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), &shortener.Mapping{
			Code:    "abc123",
			LongURL: "https://example.com",
		})

		err := s.Insert(context.Background(), &shortener.Mapping{
			Code:    "abc123",
			LongURL: "https://other.com",
		})

		assert.ErrorIs(t, err, shortener.ErrCodeTaken)

		mapping, _ := s.GetByCode(context.Background(), "abc123")
		assert.Equal(t, "https://example.com", mapping.LongURL, "first write wins")
	})
}

func TestMemoryStore_Exists(t *testing.T) {
	s := store.NewMemoryStore()
	_ = s.Insert(context.Background(), &shortener.Mapping{
		Code:    "abc123",
		LongURL: "https://example.com",
	})

	exists, err := s.Exists(context.Background(), "abc123")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryStore_GetByCode(t *testing.T) {
	t.Run("returns the mapping when found", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), &shortener.Mapping{
			Code:    "abc123",
			LongURL: "https://example.com",
		})

		mapping, err := s.GetByCode(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", mapping.LongURL)
	})

	t.Run("returns ErrNotFound when the code does not exist", func(t *testing.T) {
		s := store.NewMemoryStore()

		mapping, err := s.GetByCode(context.Background(), "missing")

		assert.Nil(t, mapping)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})
}
