package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mizusawa-dev/swimtrack/internal/adapters/database/postgres"
	"github.com/mizusawa-dev/swimtrack/internal/domain/ranking"
)

// RankingCache is the serialized-response cache behind the ranking endpoints.
type RankingCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RankingService wires the pure ranking functions to the record store and a
// short-TTL cache. All computation happens in ranking; this service only
// fetches the snapshot and memoizes results.
type RankingService struct {
	records RecordStorage
	cache   RankingCache
	ttl     time.Duration
}

func NewRankingService(records RecordStorage, cache RankingCache, ttl time.Duration) *RankingService {
	return &RankingService{
		records: records,
		cache:   cache,
		ttl:     ttl,
	}
}

func (s *RankingService) snapshot(ctx context.Context) ([]ranking.Record, error) {
	records, err := s.records.GetAll(ctx, postgres.RecordFilter{})
	if err != nil {
		return nil, err
	}
	return ranking.FromEntities(records), nil
}

// IM returns the monthly individual-medley podium.
func (s *RankingService) IM(ctx context.Context, year int, month time.Month) (ranking.IMResult, error) {
	key := fmt.Sprintf("im:%d-%02d", year, int(month))
	var cached ranking.IMResult
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	result := ranking.CalculateIMRankings(records, year, month)
	s.toCache(ctx, key, result)
	return result, nil
}

// Growth returns the even-month growth ranking, capped at limit entries
// (limit <= 0 returns all).
func (s *RankingService) Growth(ctx context.Context, limit int) (ranking.GrowthResult, error) {
	key := fmt.Sprintf("growth:%d", limit)
	var cached ranking.GrowthResult
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	records, err := s.snapshot(ctx)
	if err != nil {
		return ranking.GrowthResult{}, err
	}
	result := ranking.CalculateGrowthRankings(records, limit)
	s.toCache(ctx, key, result)
	return result, nil
}

// BestTimes is computed fresh each call; the grouping is cheap and the
// filter space is too wide to cache usefully.
func (s *RankingService) BestTimes(ctx context.Context, filter ranking.BestTimeFilter, byDistance bool) (interface{}, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if byDistance {
		return ranking.BestTimesByDistance(records, filter), nil
	}
	return ranking.BestTimesByStyle(records, filter), nil
}

// PersonalBests returns one athlete's bests per style, distance and pool.
func (s *RankingService) PersonalBests(ctx context.Context, studentID uint) (map[string]ranking.Record, error) {
	records, err := s.records.GetAll(ctx, postgres.RecordFilter{StudentID: studentID})
	if err != nil {
		return nil, err
	}
	return ranking.PersonalBests(ranking.FromEntities(records), ranking.ByStyleDistancePool), nil
}

// fromCache loads key into out; any cache failure counts as a miss.
func (s *RankingService) fromCache(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *RankingService) toCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, key, data, s.ttl)
}
