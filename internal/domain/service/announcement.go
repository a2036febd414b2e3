package service

import (
	"context"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type AnnouncementStorage interface {
	Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error)
	GetLatest(ctx context.Context) (*entity.Announcement, error)
}

type AnnouncementService struct {
	storage AnnouncementStorage
}

func NewAnnouncementService(storage AnnouncementStorage) *AnnouncementService {
	return &AnnouncementService{
		storage: storage,
	}
}

// Publish stores a new announcement; readers only ever see the latest one.
func (s *AnnouncementService) Publish(ctx context.Context, content string, createdBy uint) (*entity.Announcement, error) {
	return s.storage.Create(ctx, &entity.Announcement{
		Content:   content,
		CreatedBy: createdBy,
	})
}

func (s *AnnouncementService) Latest(ctx context.Context) (*entity.Announcement, error) {
	return s.storage.GetLatest(ctx)
}
