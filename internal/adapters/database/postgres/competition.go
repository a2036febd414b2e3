package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type competitionStorage struct {
	db *gorm.DB
}

func NewCompetitionStorage(db *gorm.DB) *competitionStorage {
	return &competitionStorage{
		db: db,
	}
}

// Create is a function that creates a new competition in the database.
func (s *competitionStorage) Create(ctx context.Context, competition *entity.Competition) (*entity.Competition, error) {
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(&competition).Error
	})
	return competition, err
}

// Get is a function that gets a competition from the database by id.
func (s *competitionStorage) Get(ctx context.Context, id uint) (*entity.Competition, error) {
	var competition entity.Competition
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Where("id = ?", id).First(&competition).Error
	})
	return &competition, err
}

// GetAll is a function that gets all competitions, newest first.
func (s *competitionStorage) GetAll(ctx context.Context) ([]entity.Competition, error) {
	var competitions []entity.Competition
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Order("date DESC").Find(&competitions).Error
	})
	return competitions, err
}

// Update is a function that updates a competition in the database.
func (s *competitionStorage) Update(ctx context.Context, competition *entity.Competition) (*entity.Competition, error) {
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Save(&competition).Error
	})
	return competition, err
}

// Delete removes a competition. Records keep the denormalized name.
func (s *competitionStorage) Delete(ctx context.Context, id uint) error {
	return withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Delete(&entity.Competition{}, id).Error
	})
}
