package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-billing/internal/adapter/memory"
	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

type fixtureAd struct {
	title       string
	impressions int64
	clicks      int64
	maxCPC      string
}

// buildCatalog creates one campaign per entry, each with a single ad group.
func buildCatalog(t *testing.T, campaigns map[string][]fixtureAd, order []string, budgets map[string]int64) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	for _, name := range order {
		camp := &domain.Campaign{Name: name, Budget: decimal.NewFromInt(budgets[name])}
		require.NoError(t, store.CreateCampaign(ctx, camp))
		group := &domain.AdGroup{CampaignID: camp.ID, Name: name + "-g"}
		require.NoError(t, store.CreateAdGroup(ctx, group))
		for _, a := range campaigns[name] {
			require.NoError(t, store.CreateAd(ctx, &domain.Ad{
				AdGroupID:   group.ID,
				Title:       a.title,
				Impressions: a.impressions,
				Clicks:      a.clicks,
				MaxCPC:      dec(a.maxCPC),
			}))
		}
	}
	return store
}

func TestOverview(t *testing.T) {
	store := buildCatalog(t,
		map[string][]fixtureAd{
			"A": {{"a1", 1000, 30, "1"}, {"a2", 500, 7, "1"}},
			"B": {{"b1", 1500, 10, "1"}},
		},
		[]string{"A", "B"},
		map[string]int64{"A": 3000, "B": 2000},
	)
	svc := NewAnalyticsUseCase(store)

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3000), o.TotalImpressions)
	assert.Equal(t, int64(47), o.TotalClicks)
	assert.Equal(t, 1.6, o.ConversionRate)
	assert.True(t, o.TotalSpend.Equal(dec("5000")))
	assert.Equal(t, port.TrendDown, o.ImpressionsTrend)
	assert.Equal(t, port.TrendDown, o.ClicksTrend)
	assert.Equal(t, port.TrendUp, o.ConversionRateTrend)
	assert.Equal(t, port.TrendUp, o.SpendTrend)
}

func TestOverviewEmptyCatalog(t *testing.T) {
	svc := NewAnalyticsUseCase(memory.NewStore())

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, o.ConversionRate)
	assert.True(t, o.TotalSpend.IsZero())
}

func TestTrends(t *testing.T) {
	store := buildCatalog(t,
		map[string][]fixtureAd{"A": {{"a1", 3015, 61, "1"}}},
		[]string{"A"}, map[string]int64{"A": 1},
	)
	svc := NewAnalyticsUseCase(store)
	svc.now = func() time.Time { return time.Date(2025, 3, 5, 23, 0, 0, 0, time.UTC) }

	tr, err := svc.Trends(context.Background())
	require.NoError(t, err)
	require.Len(t, tr.Dates, 30)
	assert.Equal(t, "2025-02-04", tr.Dates[0])
	assert.Equal(t, "2025-03-05", tr.Dates[29])
	for i := range tr.Dates {
		assert.Equal(t, int64(100), tr.Impressions[i])
		assert.Equal(t, int64(2), tr.Clicks[i])
	}
}

func TestCampaignPerformanceAndTop(t *testing.T) {
	store := buildCatalog(t,
		map[string][]fixtureAd{
			"low":    {{"l", 1000, 10, "1"}},
			"high":   {{"h", 1000, 80, "1"}},
			"mid":    {{"m1", 500, 10, "1"}, {"m2", 500, 20, "1"}},
			"tied":   {{"t", 100, 3, "1"}},
			"silent": nil,
		},
		[]string{"low", "high", "mid", "tied", "silent"},
		map[string]int64{"low": 1, "high": 2, "mid": 3, "tied": 4, "silent": 5},
	)
	svc := NewAnalyticsUseCase(store)
	ctx := context.Background()

	perf, err := svc.CampaignPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, perf, 5)
	assert.Equal(t, "mid", perf[2].Name)
	assert.Equal(t, int64(1000), perf[2].Impressions)
	assert.Equal(t, int64(30), perf[2].Clicks)
	assert.InDelta(t, 3.0, perf[2].CTR, 1e-9)
	assert.True(t, perf[2].Spend.Equal(dec("3")))
	assert.Zero(t, perf[4].CTR)

	top, err := svc.TopCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, top, 3)
	// "mid" and "tied" share 3% CTR; catalog order breaks the tie
	assert.Equal(t, []string{"high", "mid", "tied"}, []string{top[0].Name, top[1].Name, top[2].Name})
}

func TestAdPerformance(t *testing.T) {
	store := buildCatalog(t,
		map[string][]fixtureAd{"A": {{"a1", 200, 8, "0.25"}}},
		[]string{"A"}, map[string]int64{"A": 1},
	)
	svc := NewAnalyticsUseCase(store)

	ads, err := svc.AdPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "a1", ads[0].Title)
	assert.InDelta(t, 4.0, ads[0].CTR, 1e-9)
	assert.True(t, ads[0].Spend.Equal(dec("2")))
}

type failingCatalog struct {
	*memory.Store
	err error
}

func (f failingCatalog) ListAdGroups(context.Context, port.AdGroupFilter) ([]domain.AdGroup, error) {
	return nil, f.err
}

func TestAnalyticsPropagatesLoadError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewAnalyticsUseCase(failingCatalog{Store: memory.NewStore(), err: boom})

	_, err := svc.CampaignPerformance(context.Background())
	require.ErrorIs(t, err, boom)
}
