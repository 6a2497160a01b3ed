package handlers_test

import (
	"context"
	"errors"

	"github.com/Gauraangst/shorty/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com"

// mockStore is a test double for shortener.Repository that can be configured to return errors.
type mockStore struct {
	exists       bool
	existsErr    error
	insertErr    error
	getByCodeErr error
	inserted     *shortener.Mapping
}

func (m *mockStore) Exists(_ context.Context, _ shortener.Code) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}

	return m.exists, nil
}

func (m *mockStore) Insert(_ context.Context, mapping *shortener.Mapping) error {
	if m.insertErr != nil {
		return m.insertErr
	}

	m.inserted = mapping

	return nil
}

func (m *mockStore) GetByCode(_ context.Context, _ shortener.Code) (*shortener.Mapping, error) {
	if m.getByCodeErr != nil {
		return nil, m.getByCodeErr
	}

	return nil, shortener.ErrNotFound
}
