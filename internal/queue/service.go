package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusq/internal/models"
	"campusq/internal/store"

	"github.com/google/uuid"
)

const (
	// DefaultEstimatedTime is the per-person wait estimate, in minutes,
	// applied when the administrator does not supply one.
	DefaultEstimatedTime = 5
	// QueueTTL is how long a queue lives before the sweeper removes it.
	QueueTTL = 15 * time.Hour

	// Entry-list writes replace the whole items column, so concurrent
	// joins can collide on the version check. A few retries absorb that.
	saveRetries = 3
)

// Service owns all queue mutations. Every entry-list change is a
// read-modify-write of the whole list with positions reassigned through
// models.AssignPositions.
type Service struct {
	store          store.RowStore
	strictServices bool
}

type Option func(*Service)

// WithStrictServices makes joins reject a service that is not in the
// queue's service list. The default is permissive: the service string is
// advisory.
func WithStrictServices() Option {
	return func(s *Service) { s.strictServices = true }
}

func NewService(rs store.RowStore, opts ...Option) *Service {
	s := &Service{store: rs}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateParams are the administrator-supplied fields for a new queue.
type CreateParams struct {
	Title                  string `json:"title"`
	Category               string `json:"category"`
	EstimatedTimePerPerson int    `json:"estimatedTimePerPerson"`
}

func (s *Service) CreateQueue(ctx context.Context, p CreateParams) (*models.Queue, error) {
	if p.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	services, ok := models.CategoryServices(p.Category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, p.Category)
	}
	if p.EstimatedTimePerPerson < 0 {
		return nil, fmt.Errorf("%w: estimatedTimePerPerson must be positive", ErrInvalidArgument)
	}
	est := p.EstimatedTimePerPerson
	if est == 0 {
		est = DefaultEstimatedTime
	}

	q := &models.Queue{
		ID:                     uuid.NewString(),
		Title:                  p.Title,
		Category:               p.Category,
		Services:               services,
		Items:                  []models.Entry{},
		IsActive:               true,
		CreatedAt:              time.Now().UnixMilli(),
		EstimatedTimePerPerson: est,
	}
	if err := s.store.Insert(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) GetQueue(ctx context.Context, id string) (*models.Queue, error) {
	q, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return q, nil
}

func (s *Service) ListQueues(ctx context.Context) ([]models.Queue, error) {
	return s.store.List(ctx)
}

// Patch is a partial queue update. Nil fields are left untouched; the
// design does not restrict which fields a patch may overwrite.
type Patch struct {
	Title                  *string         `json:"title"`
	Category               *string         `json:"category"`
	Services               *[]string       `json:"services"`
	Items                  *[]models.Entry `json:"items"`
	IsActive               *bool           `json:"isActive"`
	CreatedAt              *int64          `json:"createdAt"`
	EstimatedTimePerPerson *int            `json:"estimatedTimePerPerson"`
}

func (s *Service) UpdateQueue(ctx context.Context, id string, p Patch) (*models.Queue, error) {
	for attempt := 0; ; attempt++ {
		q, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, translate(err)
		}
		if p.Title != nil {
			q.Title = *p.Title
		}
		if p.Category != nil {
			q.Category = *p.Category
		}
		if p.Services != nil {
			q.Services = *p.Services
		}
		if p.Items != nil {
			q.Items = models.AssignPositions(*p.Items)
		}
		if p.IsActive != nil {
			q.IsActive = *p.IsActive
		}
		if p.CreatedAt != nil {
			q.CreatedAt = *p.CreatedAt
		}
		if p.EstimatedTimePerPerson != nil {
			q.EstimatedTimePerPerson = *p.EstimatedTimePerPerson
		}
		err = s.store.Save(ctx, q)
		if err == nil {
			return q, nil
		}
		if !errors.Is(err, store.ErrConflict) || attempt >= saveRetries {
			return nil, translate(err)
		}
	}
}

// JoinParams are the fields a visitor submits to take a place in line.
// ID and Timestamp are optional; when absent the server generates them.
type JoinParams struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Service   string `json:"service"`
	Details   string `json:"details"`
	Timestamp int64  `json:"timestamp"`
}

// AddEntry appends a new entry to the queue and renumbers the list. The
// returned entry carries its assigned position.
func (s *Service) AddEntry(ctx context.Context, queueID string, p JoinParams) (*models.Queue, models.Entry, error) {
	if p.Name == "" || p.Service == "" {
		return nil, models.Entry{}, fmt.Errorf("%w: name and service are required", ErrInvalidArgument)
	}
	entry := models.Entry{
		ID:        p.ID,
		Name:      p.Name,
		Service:   p.Service,
		Details:   p.Details,
		Timestamp: p.Timestamp,
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().UnixMilli()
	}

	for attempt := 0; ; attempt++ {
		q, err := s.store.Get(ctx, queueID)
		if err != nil {
			return nil, models.Entry{}, translate(err)
		}
		if s.strictServices && !containsService(q.Services, p.Service) {
			return nil, models.Entry{}, fmt.Errorf("%w: service %q is not offered by this queue", ErrInvalidArgument, p.Service)
		}
		q.Items = models.AssignPositions(append(q.Items, entry))
		err = s.store.Save(ctx, q)
		if err == nil {
			return q, q.Items[len(q.Items)-1], nil
		}
		if !errors.Is(err, store.ErrConflict) || attempt >= saveRetries {
			return nil, models.Entry{}, translate(err)
		}
	}
}

// RemoveEntry filters the entry out of the queue and renumbers the
// remainder. An entry id with no match is not an error; the list is
// simply rewritten unchanged.
func (s *Service) RemoveEntry(ctx context.Context, queueID, entryID string) (*models.Queue, error) {
	for attempt := 0; ; attempt++ {
		q, err := s.store.Get(ctx, queueID)
		if err != nil {
			return nil, translate(err)
		}
		remaining := make([]models.Entry, 0, len(q.Items))
		for _, e := range q.Items {
			if e.ID != entryID {
				remaining = append(remaining, e)
			}
		}
		q.Items = models.AssignPositions(remaining)
		err = s.store.Save(ctx, q)
		if err == nil {
			return q, nil
		}
		if !errors.Is(err, store.ErrConflict) || attempt >= saveRetries {
			return nil, translate(err)
		}
	}
}

// DeleteQueue removes the queue row and reports whether it existed.
func (s *Service) DeleteQueue(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}

// SweepExpired deletes every queue older than QueueTTL and returns the
// count. Idempotent: with nothing past the cutoff it deletes zero rows.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-QueueTTL).UnixMilli()
	return s.store.DeleteCreatedBefore(ctx, cutoff)
}

func containsService(services []string, service string) bool {
	for _, s := range services {
		if s == service {
			return true
		}
	}
	return false
}

func translate(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrConflict):
		return ErrConflict
	default:
		return err
	}
}
