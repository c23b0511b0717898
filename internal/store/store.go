// Package store holds every SQL statement the POS issues. Handlers never
// talk to the pool directly.
package store

import (
	"context"
	"errors"
	"fmt"

	"restoflow/internal/database"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrUserNotFound     = errors.New("user not found")
)

// ValidationError reports a request that was rejected before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// ItemNotFoundError reports a cart entry whose item_id has no menu row.
type ItemNotFoundError struct {
	ItemID int64
}

func (e ItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item %d not found", e.ItemID)
}

type Store struct {
	db database.DB
}

func New(db database.DB) *Store {
	return &Store{db: db}
}

// Ping checks that a pooled connection can reach the server.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
