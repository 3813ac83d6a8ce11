package store

import (
	"context"
	"errors"

	"campusq/internal/models"

	"gorm.io/gorm"
)

// GormStore keeps queue rows in a relational database. Services and items
// live in JSON columns, so every Save is a whole-row replacement guarded
// by the version column.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(ctx context.Context, q *models.Queue) error {
	q.Version = 1
	return s.db.WithContext(ctx).Create(q).Error
}

func (s *GormStore) Get(ctx context.Context, id string) (*models.Queue, error) {
	var q models.Queue
	if err := s.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (s *GormStore) Save(ctx context.Context, q *models.Queue) error {
	res := s.db.WithContext(ctx).Model(&models.Queue{}).
		Where("id = ? AND version = ?", q.ID, q.Version).
		Updates(map[string]interface{}{
			"title":                     q.Title,
			"category":                  q.Category,
			"services":                  q.Services,
			"items":                     q.Items,
			"is_active":                 q.IsActive,
			"created_at":                q.CreatedAt,
			"estimated_time_per_person": q.EstimatedTimePerPerson,
			"version":                   q.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the row is gone or someone else bumped the version.
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Queue{}).Where("id = ?", q.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	q.Version++
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Queue{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) List(ctx context.Context) ([]models.Queue, error) {
	var queues []models.Queue
	if err := s.db.WithContext(ctx).Find(&queues).Error; err != nil {
		return nil, err
	}
	return queues, nil
}

func (s *GormStore) DeleteCreatedBefore(ctx context.Context, cutoff int64) (int, error) {
	res := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.Queue{})
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}
