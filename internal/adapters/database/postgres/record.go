package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type recordStorage struct {
	db *gorm.DB
}

func NewRecordStorage(db *gorm.DB) *recordStorage {
	return &recordStorage{
		db: db,
	}
}

// RecordFilter narrows record queries; zero values are skipped.
type RecordFilter struct {
	StudentID     uint
	Style         entity.Style
	PoolLength    int
	IsCompetition *bool
	From          time.Time
	To            time.Time
}

func (f RecordFilter) apply(q *gorm.DB) *gorm.DB {
	if f.StudentID != 0 {
		q = q.Where("student_id = ?", f.StudentID)
	}
	if f.Style != "" {
		q = q.Where("style = ?", f.Style)
	}
	if f.PoolLength != 0 {
		q = q.Where("pool_length = ?", f.PoolLength)
	}
	if f.IsCompetition != nil {
		q = q.Where("is_competition = ?", *f.IsCompetition)
	}
	if !f.From.IsZero() {
		q = q.Where("date >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("date <= ?", f.To)
	}
	return q
}

// Create is a function that creates a new swim record in the database.
func (s *recordStorage) Create(ctx context.Context, record *entity.SwimRecord) (*entity.SwimRecord, error) {
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(&record).Error
	})
	return record, err
}

// Get is a function that gets a swim record from the database by id.
func (s *recordStorage) Get(ctx context.Context, id uint) (*entity.SwimRecord, error) {
	var record entity.SwimRecord
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Preload("Student").Where("id = ?", id).First(&record).Error
	})
	return &record, err
}

// GetAll returns the filtered records with their students, newest first.
func (s *recordStorage) GetAll(ctx context.Context, filter RecordFilter) ([]entity.SwimRecord, error) {
	var records []entity.SwimRecord
	err := withRetry(ctx, func(ctx context.Context) error {
		return filter.apply(s.db.WithContext(ctx).Preload("Student")).
			Order("date DESC, id DESC").
			Find(&records).Error
	})
	return records, err
}

// Update is a function that updates a swim record in the database.
func (s *recordStorage) Update(ctx context.Context, record *entity.SwimRecord) (*entity.SwimRecord, error) {
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Save(&record).Error
	})
	return record, err
}

// Delete is a function that deletes a swim record from the database.
func (s *recordStorage) Delete(ctx context.Context, id uint) error {
	return withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Delete(&entity.SwimRecord{}, id).Error
	})
}
