package service

import (
	"context"
	"errors"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

var ErrStatsUnavailable = errors.New("event recording is not configured")

const recentEventsLimit = 20

// StatsStore reads aggregated generation events.
type StatsStore interface {
	CountByStrength(ctx context.Context) ([]model.StrengthCount, error)
	AverageEntropy(ctx context.Context) (float64, error)
	ListRecent(ctx context.Context, limit int) ([]model.GenerationEvent, error)
}

// StatsService summarizes recorded generations.
type StatsService struct {
	store StatsStore
}

// NewStatsService creates a new StatsService. A nil store makes every call
// return ErrStatsUnavailable.
func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{store: store}
}

// Summary returns totals, average entropy, per-label counts and recent events.
// Every label is present in the per-label counts, in weakest to strongest order.
func (s *StatsService) Summary(ctx context.Context) (model.StatsResponse, error) {
	if s.store == nil {
		return model.StatsResponse{}, ErrStatsUnavailable
	}

	counts, err := s.store.CountByStrength(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	avg, err := s.store.AverageEntropy(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	recent, err := s.store.ListRecent(ctx, recentEventsLimit)
	if err != nil {
		return model.StatsResponse{}, err
	}

	byLabel := make(map[string]int64, len(counts))
	var total int64
	for _, c := range counts {
		byLabel[c.Strength] += c.Count
		total += c.Count
	}

	resp := model.StatsResponse{
		Total:          total,
		AverageEntropy: avg,
		ByStrength:     make([]model.StrengthCount, 0, len(crypto.Labels)),
		Recent:         eventsToResponse(recent),
	}
	for _, label := range crypto.Labels {
		resp.ByStrength = append(resp.ByStrength, model.StrengthCount{
			Strength: string(label),
			Count:    byLabel[string(label)],
		})
	}

	return resp, nil
}

// eventsToResponse converts a slice of GenerationEvent to a slice of EventResponse.
func eventsToResponse(events []model.GenerationEvent) []model.EventResponse {
	result := make([]model.EventResponse, len(events))
	for i, e := range events {
		result[i] = model.EventResponse{
			ID:        e.ID,
			Length:    e.Length,
			PoolSize:  e.PoolSize,
			Classes:   e.Classes,
			Entropy:   e.Entropy,
			Strength:  e.Strength,
			Source:    e.Source,
			CreatedAt: e.CreatedAt,
		}
	}
	return result
}
