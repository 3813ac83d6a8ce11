package store

import (
	"context"
	"errors"
	"sync"

	"campusq/internal/models"

	"gorm.io/gorm"
)

// AdminStore persists administrator accounts. Mirrors the RowStore
// split: a database-backed implementation for the server and an
// in-process one for tests.
type AdminStore interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id uint) (*models.Admin, error)
}

type GormAdminStore struct {
	db *gorm.DB
}

func NewGormAdminStore(db *gorm.DB) *GormAdminStore {
	return &GormAdminStore{db: db}
}

func (s *GormAdminStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	return s.db.WithContext(ctx).Create(admin).Error
}

func (s *GormAdminStore) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (s *GormAdminStore) GetAdminByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// MemoryAdminStore is the in-process test double.
type MemoryAdminStore struct {
	mu      sync.RWMutex
	nextID  uint
	byID    map[uint]models.Admin
	byEmail map[string]uint
}

func NewMemoryAdminStore() *MemoryAdminStore {
	return &MemoryAdminStore{
		nextID:  1,
		byID:    make(map[uint]models.Admin),
		byEmail: make(map[string]uint),
	}
}

func (s *MemoryAdminStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if admin.ID == 0 {
		admin.ID = s.nextID
		s.nextID++
	}
	s.byID[admin.ID] = *admin
	s.byEmail[admin.Email] = admin.ID
	return nil
}

func (s *MemoryAdminStore) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	admin := s.byID[id]
	return &admin, nil
}

func (s *MemoryAdminStore) GetAdminByID(ctx context.Context, id uint) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	admin, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &admin, nil
}
