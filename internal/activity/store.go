package activity

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gorm.io/gorm"
)

type Store interface {
	Write(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, q Query) ([]Entry, error)
}

// GormStore persists entries in MySQL through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("activity: migrate %w", err)
	}
	return nil
}

func (s *GormStore) Write(ctx context.Context, entry Entry) error {
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("activity: write %w", err)
	}
	return nil
}

func (s *GormStore) Recent(ctx context.Context, q Query) ([]Entry, error) {
	tx := s.db.WithContext(ctx).Model(&Entry{})
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.EntityID != 0 {
		tx = tx.Where("entity_id = ?", q.EntityID)
	}
	if q.Level != "" {
		tx = tx.Where("level = ?", q.Level)
	}

	var entries []Entry
	if err := tx.Order("created_at DESC").Limit(q.limit()).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("activity: recent %w", err)
	}
	return entries, nil
}

// MemoryStore keeps entries in process; used when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
}

func NewMemoryStore(max int) *MemoryStore {
	if max <= 0 {
		max = 1000
	}
	return &MemoryStore{max: max}
}

func (s *MemoryStore) Write(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.max {
		s.entries = append([]Entry(nil), s.entries[len(s.entries)-s.max:]...)
	}
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, q Query) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []Entry
	for _, e := range s.entries {
		if q.matches(e) {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if limit := q.limit(); len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
