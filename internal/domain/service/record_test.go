package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/adapters/database/postgres"
	"github.com/mizusawa-dev/swimtrack/internal/domain/common/errorz"
	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type fakeRecordStorage struct {
	records map[uint]*entity.SwimRecord
	nextID  uint
}

func newFakeRecordStorage() *fakeRecordStorage {
	return &fakeRecordStorage{records: make(map[uint]*entity.SwimRecord), nextID: 1}
}

func (s *fakeRecordStorage) Create(_ context.Context, record *entity.SwimRecord) (*entity.SwimRecord, error) {
	record.ID = s.nextID
	s.nextID++
	s.records[record.ID] = record
	return record, nil
}

func (s *fakeRecordStorage) Get(_ context.Context, id uint) (*entity.SwimRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (s *fakeRecordStorage) GetAll(_ context.Context, filter postgres.RecordFilter) ([]entity.SwimRecord, error) {
	var out []entity.SwimRecord
	for _, r := range s.records {
		if filter.StudentID != 0 && r.StudentID != filter.StudentID {
			continue
		}
		if filter.IsCompetition != nil && r.IsCompetition != *filter.IsCompetition {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (s *fakeRecordStorage) Update(_ context.Context, record *entity.SwimRecord) (*entity.SwimRecord, error) {
	s.records[record.ID] = record
	return record, nil
}

func (s *fakeRecordStorage) Delete(_ context.Context, id uint) error {
	delete(s.records, id)
	return nil
}

type fakeCompetitionStorage struct {
	competitions map[uint]*entity.Competition
}

func (s *fakeCompetitionStorage) Create(_ context.Context, c *entity.Competition) (*entity.Competition, error) {
	s.competitions[c.ID] = c
	return c, nil
}

func (s *fakeCompetitionStorage) Get(_ context.Context, id uint) (*entity.Competition, error) {
	c, ok := s.competitions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (s *fakeCompetitionStorage) GetAll(_ context.Context) ([]entity.Competition, error) {
	return nil, nil
}

func (s *fakeCompetitionStorage) Update(_ context.Context, c *entity.Competition) (*entity.Competition, error) {
	return c, nil
}

func (s *fakeCompetitionStorage) Delete(_ context.Context, id uint) error {
	delete(s.competitions, id)
	return nil
}

type countingFlusher struct {
	flushes int
}

func (f *countingFlusher) Flush(context.Context) error {
	f.flushes++
	return nil
}

func validRecord() entity.SwimRecord {
	return entity.SwimRecord{
		StudentID:  1,
		Style:      entity.StyleFreestyle,
		Distance:   50,
		Time:       "00:31.20",
		Date:       time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC),
		PoolLength: 25,
	}
}

func newRecordService() (*RecordService, *fakeRecordStorage, *countingFlusher) {
	storage := newFakeRecordStorage()
	competitions := &fakeCompetitionStorage{competitions: map[uint]*entity.Competition{
		7: {ID: 7, Name: "県大会, 夏季", Location: "横浜"},
	}}
	flusher := &countingFlusher{}
	return NewRecordService(storage, competitions, flusher), storage, flusher
}

func TestRecordServiceCreateValidates(t *testing.T) {
	svc, _, _ := newRecordService()
	ctx := context.Background()

	bad := validRecord()
	bad.Style = "クロール"
	_, err := svc.Create(ctx, bad)
	assert.ErrorIs(t, err, errorz.ErrInvalidStyle)

	bad = validRecord()
	bad.Time = "31.20"
	_, err = svc.Create(ctx, bad)
	assert.ErrorIs(t, err, errorz.ErrInvalidTimeFormat)

	bad = validRecord()
	bad.PoolLength = 33
	_, err = svc.Create(ctx, bad)
	assert.ErrorIs(t, err, errorz.ErrInvalidPoolLength)

	// 60m is a 15m-pool distance, not a 25m one.
	bad = validRecord()
	bad.Distance = 60
	_, err = svc.Create(ctx, bad)
	assert.ErrorIs(t, err, errorz.ErrInvalidDistance)

	good := validRecord()
	created, err := svc.Create(ctx, good)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestRecordServiceDenormalizesCompetition(t *testing.T) {
	svc, _, _ := newRecordService()
	ctx := context.Background()

	record := validRecord()
	competitionID := uint(7)
	record.CompetitionID = &competitionID

	created, err := svc.Create(ctx, record)
	require.NoError(t, err)
	assert.True(t, created.IsCompetition)
	assert.Equal(t, "県大会, 夏季", created.CompetitionName)
	assert.Equal(t, "横浜", created.CompetitionLocation)
}

func TestRecordServiceFlushesCacheOnMutation(t *testing.T) {
	svc, _, flusher := newRecordService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRecord())
	require.NoError(t, err)
	assert.Equal(t, 1, flusher.flushes)

	created.Time = "00:30.90"
	_, err = svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 2, flusher.flushes)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, 3, flusher.flushes)
}

func TestRecordServiceUpdateMissingRecord(t *testing.T) {
	svc, _, _ := newRecordService()
	record := validRecord()
	record.ID = 99
	_, err := svc.Update(context.Background(), &record)
	assert.True(t, IsNotFound(err))
}

func TestExportCSVRoundTripsQuotedFields(t *testing.T) {
	svc, storage, _ := newRecordService()
	ctx := context.Background()

	record := validRecord()
	record.Time = "01:23.45"
	competitionID := uint(7)
	record.CompetitionID = &competitionID
	created, err := svc.Create(ctx, record)
	require.NoError(t, err)
	created.Student = entity.User{DisplayName: "山田 太郎"}
	storage.records[created.ID] = created

	data, err := svc.ExportCSV(ctx, postgres.RecordFilter{})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t,
		[]string{"swimmer_name", "pool_length", "date", "style", "distance", "total_time", "competition_name"},
		rows[0])
	assert.Equal(t,
		[]string{"山田 太郎", "25", "2024-06-08", "自由形", "50", "01:23.45", "県大会, 夏季"},
		rows[1])
}
