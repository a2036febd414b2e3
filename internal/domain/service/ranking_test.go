package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type fakeCache struct {
	entries map[string][]byte
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := c.entries[key]
	if !ok {
		return nil, assert.AnError
	}
	return data, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func imEntity(studentID uint, gender entity.Gender, timeStr string, date time.Time) *entity.SwimRecord {
	return &entity.SwimRecord{
		StudentID:  studentID,
		Student:    entity.User{ID: studentID, DisplayName: "athlete", Gender: gender},
		Style:      entity.StyleIndividualMedley,
		Distance:   60,
		PoolLength: 15,
		Time:       timeStr,
		Date:       date,
	}
}

func TestRankingServiceCachesIMResults(t *testing.T) {
	storage := newFakeRecordStorage()
	cache := &fakeCache{entries: make(map[string][]byte)}
	svc := NewRankingService(storage, cache, time.Minute)
	ctx := context.Background()

	june := time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)
	_, err := storage.Create(ctx, imEntity(1, entity.GenderMale, "00:45.00", june))
	require.NoError(t, err)

	first, err := svc.IM(ctx, 2024, time.June)
	require.NoError(t, err)
	require.Len(t, first[60][entity.GenderMale], 1)
	assert.Len(t, cache.entries, 1)

	// A new record without a cache flush does not change the cached result.
	_, err = storage.Create(ctx, imEntity(2, entity.GenderMale, "00:43.00", june))
	require.NoError(t, err)

	second, err := svc.IM(ctx, 2024, time.June)
	require.NoError(t, err)
	assert.Len(t, second[60][entity.GenderMale], 1)
}

func TestRankingServiceWorksWithoutCache(t *testing.T) {
	storage := newFakeRecordStorage()
	svc := NewRankingService(storage, nil, time.Minute)
	ctx := context.Background()

	_, err := storage.Create(ctx, imEntity(1, entity.GenderFemale, "00:50.00", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = storage.Create(ctx, imEntity(1, entity.GenderFemale, "00:48.00", time.Date(2024, time.April, 6, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	result, err := svc.Growth(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, result.Periods)
	require.Len(t, result.Entries, 1)
	assert.InDelta(t, 2.0/50.0*100, result.Entries[0].GrowthRate, 0.01)
}
