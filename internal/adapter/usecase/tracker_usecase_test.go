package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-billing/internal/adapter/memory"
	"mesa-billing/internal/core/domain"
)

func seedAd(t *testing.T, store *memory.Store) *domain.Ad {
	t.Helper()
	ctx := context.Background()
	camp := &domain.Campaign{Name: "c", Budget: decimal.NewFromInt(100)}
	require.NoError(t, store.CreateCampaign(ctx, camp))
	group := &domain.AdGroup{CampaignID: camp.ID, Name: "g"}
	require.NoError(t, store.CreateAdGroup(ctx, group))
	ad := &domain.Ad{AdGroupID: group.ID, Title: "a", MaxCPC: dec("0.5")}
	require.NoError(t, store.CreateAd(ctx, ad))
	return ad
}

func TestTrackerIncrementsCounters(t *testing.T) {
	store := memory.NewStore()
	ad := seedAd(t, store)
	svc := NewTrackerUseCase(store)
	ctx := context.Background()

	got, err := svc.RecordImpression(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Impressions)
	assert.Equal(t, int64(0), got.Clicks)

	got, err = svc.RecordClick(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Impressions)
	assert.Equal(t, int64(1), got.Clicks)
}

func TestTrackerUnknownAd(t *testing.T) {
	svc := NewTrackerUseCase(memory.NewStore())

	_, err := svc.RecordClick(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.RecordImpression(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTrackerConcurrentImpressions(t *testing.T) {
	store := memory.NewStore()
	ad := seedAd(t, store)
	svc := NewTrackerUseCase(store)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordImpression(context.Background(), ad.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.GetAd(context.Background(), ad.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.Impressions)
}
