package port

import (
	"context"

	"mesa-billing/internal/core/domain"
)

// TrackerUseCase records ad performance events.
type TrackerUseCase interface {
	// RecordImpression increments the impression counter of an ad. Unknown
	// ads yield domain.ErrNotFound.
	RecordImpression(ctx context.Context, adID string) (*domain.Ad, error)
	// RecordClick increments the click counter of an ad.
	RecordClick(ctx context.Context, adID string) (*domain.Ad, error)
}
