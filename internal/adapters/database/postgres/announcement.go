package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type announcementStorage struct {
	db *gorm.DB
}

func NewAnnouncementStorage(db *gorm.DB) *announcementStorage {
	return &announcementStorage{
		db: db,
	}
}

// Create is a function that creates a new announcement in the database.
func (s *announcementStorage) Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(&announcement).Error
	})
	return announcement, err
}

// GetLatest returns the most recent announcement.
func (s *announcementStorage) GetLatest(ctx context.Context) (*entity.Announcement, error) {
	var announcement entity.Announcement
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Order("id DESC").First(&announcement).Error
	})
	return &announcement, err
}
