package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/adapters/database/postgres"
	"github.com/mizusawa-dev/swimtrack/internal/domain/common/errorz"
	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
	"github.com/mizusawa-dev/swimtrack/internal/domain/ranking"
)

type RecordStorage interface {
	Create(ctx context.Context, record *entity.SwimRecord) (*entity.SwimRecord, error)
	Get(ctx context.Context, id uint) (*entity.SwimRecord, error)
	GetAll(ctx context.Context, filter postgres.RecordFilter) ([]entity.SwimRecord, error)
	Update(ctx context.Context, record *entity.SwimRecord) (*entity.SwimRecord, error)
	Delete(ctx context.Context, id uint) error
}

type CompetitionStorage interface {
	Create(ctx context.Context, competition *entity.Competition) (*entity.Competition, error)
	Get(ctx context.Context, id uint) (*entity.Competition, error)
	GetAll(ctx context.Context) ([]entity.Competition, error)
	Update(ctx context.Context, competition *entity.Competition) (*entity.Competition, error)
	Delete(ctx context.Context, id uint) error
}

// rankingsFlusher invalidates cached ranking responses after a mutation.
type rankingsFlusher interface {
	Flush(ctx context.Context) error
}

type RecordService struct {
	storage      RecordStorage
	competitions CompetitionStorage
	cache        rankingsFlusher
}

func NewRecordService(storage RecordStorage, competitions CompetitionStorage, cache rankingsFlusher) *RecordService {
	return &RecordService{
		storage:      storage,
		competitions: competitions,
		cache:        cache,
	}
}

// validate enforces the record invariants: a known style, a well-formed time
// and a distance that can be swum in the record's pool.
func (s *RecordService) validate(record *entity.SwimRecord) error {
	if !entity.ValidStyle(record.Style) {
		return errorz.ErrInvalidStyle
	}
	if !ranking.ValidTime(record.Time) {
		return errorz.ErrInvalidTimeFormat
	}
	if _, ok := entity.AllowedDistances[record.PoolLength]; !ok {
		return errorz.ErrInvalidPoolLength
	}
	if !entity.DistanceAllowed(record.PoolLength, record.Distance) {
		return errorz.ErrInvalidDistance
	}
	return nil
}

// denormalize copies the competition name and location onto the record so it
// survives competition deletion.
func (s *RecordService) denormalize(ctx context.Context, record *entity.SwimRecord) error {
	if record.CompetitionID == nil {
		return nil
	}
	competition, err := s.competitions.Get(ctx, *record.CompetitionID)
	if err != nil {
		return err
	}
	record.IsCompetition = true
	record.CompetitionName = competition.Name
	record.CompetitionLocation = competition.Location
	return nil
}

func (s *RecordService) Create(ctx context.Context, record entity.SwimRecord) (*entity.SwimRecord, error) {
	if err := s.validate(&record); err != nil {
		return nil, err
	}
	if err := s.denormalize(ctx, &record); err != nil {
		return nil, err
	}
	created, err := s.storage.Create(ctx, &record)
	if err != nil {
		return nil, err
	}
	s.flush(ctx)
	return created, nil
}

func (s *RecordService) Get(ctx context.Context, id uint) (*entity.SwimRecord, error) {
	return s.storage.Get(ctx, id)
}

func (s *RecordService) GetAll(ctx context.Context, filter postgres.RecordFilter) ([]entity.SwimRecord, error) {
	return s.storage.GetAll(ctx, filter)
}

// Competitions returns only the records swum at competitions.
func (s *RecordService) Competitions(ctx context.Context) ([]entity.SwimRecord, error) {
	isCompetition := true
	return s.storage.GetAll(ctx, postgres.RecordFilter{IsCompetition: &isCompetition})
}

func (s *RecordService) Update(ctx context.Context, record *entity.SwimRecord) (*entity.SwimRecord, error) {
	if err := s.validate(record); err != nil {
		return nil, err
	}
	if _, err := s.storage.Get(ctx, record.ID); err != nil {
		return nil, err
	}
	if err := s.denormalize(ctx, record); err != nil {
		return nil, err
	}
	updated, err := s.storage.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.flush(ctx)
	return updated, nil
}

func (s *RecordService) Delete(ctx context.Context, id uint) error {
	if _, err := s.storage.Get(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		return err
	}
	s.flush(ctx)
	return nil
}

// Snapshot returns the filtered records in the flat shape the ranking
// functions consume.
func (s *RecordService) Snapshot(ctx context.Context, filter postgres.RecordFilter) ([]ranking.Record, error) {
	records, err := s.storage.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ranking.FromEntities(records), nil
}

// csvHeader is the fixed export column order.
var csvHeader = []string{"swimmer_name", "pool_length", "date", "style", "distance", "total_time", "competition_name"}

// ExportCSV renders the filtered records as CSV with the fixed column order.
func (s *RecordService) ExportCSV(ctx context.Context, filter postgres.RecordFilter) ([]byte, error) {
	records, err := s.storage.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.Student.DisplayName,
			strconv.Itoa(r.PoolLength),
			r.Date.Format("2006-01-02"),
			string(r.Style),
			strconv.Itoa(r.Distance),
			r.Time,
			r.CompetitionName,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *RecordService) flush(ctx context.Context) {
	if s.cache == nil {
		return
	}
	// Best effort; a stale ranking expires with the TTL anyway.
	_ = s.cache.Flush(ctx)
}

// IsNotFound reports whether err is the store's not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
