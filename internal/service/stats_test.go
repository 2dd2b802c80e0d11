package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/model"
)

type fakeStatsStore struct {
	counts []model.StrengthCount
	avg    float64
	recent []model.GenerationEvent
	err    error
}

func (f *fakeStatsStore) CountByStrength(context.Context) ([]model.StrengthCount, error) {
	return f.counts, f.err
}

func (f *fakeStatsStore) AverageEntropy(context.Context) (float64, error) {
	return f.avg, f.err
}

func (f *fakeStatsStore) ListRecent(_ context.Context, limit int) ([]model.GenerationEvent, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], f.err
	}
	return f.recent, f.err
}

func TestSummary(t *testing.T) {
	store := &fakeStatsStore{
		counts: []model.StrengthCount{
			{Strength: "Very Strong", Count: 4},
			{Strength: "Medium", Count: 1},
		},
		avg: 88.2,
		recent: []model.GenerationEvent{
			{ID: "a", Length: 16, PoolSize: 94, Entropy: 104, Strength: "Very Strong", Source: "api", CreatedAt: time.Now()},
		},
	}

	resp, err := NewStatsService(store).Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 5 {
		t.Errorf("expected total 5, got %d", resp.Total)
	}
	if resp.AverageEntropy != 88.2 {
		t.Errorf("expected average 88.2, got %v", resp.AverageEntropy)
	}

	want := []model.StrengthCount{
		{Strength: "Weak", Count: 0},
		{Strength: "Medium", Count: 1},
		{Strength: "Strong", Count: 0},
		{Strength: "Very Strong", Count: 4},
	}
	if len(resp.ByStrength) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(resp.ByStrength))
	}
	for i := range want {
		if resp.ByStrength[i] != want[i] {
			t.Errorf("label %d = %+v, want %+v", i, resp.ByStrength[i], want[i])
		}
	}
	if len(resp.Recent) != 1 || resp.Recent[0].ID != "a" {
		t.Errorf("unexpected recent events: %+v", resp.Recent)
	}
}

func TestSummary_NoStore(t *testing.T) {
	_, err := NewStatsService(nil).Summary(context.Background())
	if !errors.Is(err, ErrStatsUnavailable) {
		t.Errorf("expected ErrStatsUnavailable, got %v", err)
	}
}

func TestSummary_StoreError(t *testing.T) {
	_, err := NewStatsService(&fakeStatsStore{err: errors.New("boom")}).Summary(context.Background())
	if err == nil {
		t.Fatal("expected error from store")
	}
}
