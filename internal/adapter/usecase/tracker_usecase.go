package usecase

import (
	"context"
	"fmt"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

// TrackerUseCase implements port.TrackerUseCase on top of the catalog.
type TrackerUseCase struct {
	repo port.CatalogRepository
}

// NewTrackerUseCase creates a tracker.
func NewTrackerUseCase(repo port.CatalogRepository) *TrackerUseCase {
	return &TrackerUseCase{repo: repo}
}

// RecordImpression increments the impression counter of adID.
func (u *TrackerUseCase) RecordImpression(ctx context.Context, adID string) (*domain.Ad, error) {
	return u.increment(ctx, adID, 1, 0)
}

// RecordClick increments the click counter of adID.
func (u *TrackerUseCase) RecordClick(ctx context.Context, adID string) (*domain.Ad, error) {
	return u.increment(ctx, adID, 0, 1)
}

func (u *TrackerUseCase) increment(ctx context.Context, adID string, impressions, clicks int64) (*domain.Ad, error) {
	if adID == "" {
		return nil, domain.ErrNotFound
	}
	ad, err := u.repo.IncrementAdCounters(ctx, adID, impressions, clicks)
	if err != nil {
		return nil, fmt.Errorf("increment ad %s: %w", adID, err)
	}
	if ad == nil {
		return nil, fmt.Errorf("ad %s: %w", adID, domain.ErrNotFound)
	}
	return ad, nil
}
