package store

import (
	"context"
	"errors"

	"campusq/internal/models"
)

var (
	// ErrNotFound is returned when no row exists for the given key.
	ErrNotFound = errors.New("row not found")
	// ErrConflict is returned by Save when the row's version moved since
	// the caller read it.
	ErrConflict = errors.New("queue version conflict")
)

// RowStore persists queue rows. A queue row is the unit of atomicity:
// Save replaces the whole row and performs a compare-and-swap on the
// version column, so read-modify-write callers can detect lost updates.
type RowStore interface {
	Insert(ctx context.Context, q *models.Queue) error
	Get(ctx context.Context, id string) (*models.Queue, error)
	Save(ctx context.Context, q *models.Queue) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]models.Queue, error)
	// DeleteCreatedBefore removes every queue with createdAt < cutoff
	// (epoch milliseconds) and reports how many rows went away.
	DeleteCreatedBefore(ctx context.Context, cutoff int64) (int, error)
}
