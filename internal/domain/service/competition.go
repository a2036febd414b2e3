package service

import (
	"context"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type CompetitionService struct {
	storage CompetitionStorage
}

func NewCompetitionService(storage CompetitionStorage) *CompetitionService {
	return &CompetitionService{
		storage: storage,
	}
}

func (s *CompetitionService) Create(ctx context.Context, competition *entity.Competition) (*entity.Competition, error) {
	return s.storage.Create(ctx, competition)
}

func (s *CompetitionService) Get(ctx context.Context, id uint) (*entity.Competition, error) {
	return s.storage.Get(ctx, id)
}

func (s *CompetitionService) GetAll(ctx context.Context) ([]entity.Competition, error) {
	return s.storage.GetAll(ctx)
}

func (s *CompetitionService) Update(ctx context.Context, competition *entity.Competition) (*entity.Competition, error) {
	if _, err := s.storage.Get(ctx, competition.ID); err != nil {
		return nil, err
	}
	return s.storage.Update(ctx, competition)
}

// Delete removes the competition only; records keep their denormalized
// competition name.
func (s *CompetitionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.storage.Get(ctx, id); err != nil {
		return err
	}
	return s.storage.Delete(ctx, id)
}
