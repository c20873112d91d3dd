package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

const (
	trendDays        = 30
	topCampaignCount = 3

	impressionsTrendPivot = 100000
	clicksTrendPivot      = 5000
	conversionTrendPivot  = 3.0
)

var spendTrendPivot = decimal.NewFromInt(4000)

// AnalyticsUseCase implements port.AnalyticsUseCase. Reports are computed in
// memory from a full scan of the catalog.
type AnalyticsUseCase struct {
	repo port.CatalogRepository
	now  func() time.Time
}

// NewAnalyticsUseCase creates the aggregator.
func NewAnalyticsUseCase(repo port.CatalogRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, now: time.Now}
}

type snapshot struct {
	campaigns []domain.Campaign
	adGroups  []domain.AdGroup
	ads       []domain.Ad
}

// load fetches the three collections concurrently.
func (u *AnalyticsUseCase) load(ctx context.Context, withCampaigns, withGroups bool) (*snapshot, error) {
	var s snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.ads, err = u.repo.ListAds(ctx, port.AdFilter{})
		return err
	})
	if withCampaigns {
		g.Go(func() (err error) {
			s.campaigns, err = u.repo.ListCampaigns(ctx, port.CampaignFilter{})
			return err
		})
	}
	if withGroups {
		g.Go(func() (err error) {
			s.adGroups, err = u.repo.ListAdGroups(ctx, port.AdGroupFilter{})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Overview returns catalog totals and coarse trend labels.
func (u *AnalyticsUseCase) Overview(ctx context.Context) (*port.Overview, error) {
	s, err := u.load(ctx, true, false)
	if err != nil {
		return nil, err
	}
	var o port.Overview
	for _, ad := range s.ads {
		o.TotalImpressions += ad.Impressions
		o.TotalClicks += ad.Clicks
	}
	o.TotalSpend = decimal.Zero
	for _, c := range s.campaigns {
		o.TotalSpend = o.TotalSpend.Add(c.Budget)
	}
	o.ConversionRate = math.Round(ratePercent(o.TotalClicks, o.TotalImpressions)*10) / 10

	o.ImpressionsTrend = trend(o.TotalImpressions > impressionsTrendPivot)
	o.ClicksTrend = trend(o.TotalClicks > clicksTrendPivot)
	o.ConversionRateTrend = trend(!(o.ConversionRate > conversionTrendPivot))
	o.SpendTrend = trend(o.TotalSpend.GreaterThan(spendTrendPivot))
	return &o, nil
}

// Trends spreads the current totals evenly over the last 30 days. There is
// no per-day event history, so each day carries the daily average.
func (u *AnalyticsUseCase) Trends(ctx context.Context) (*port.Trends, error) {
	s, err := u.load(ctx, false, false)
	if err != nil {
		return nil, err
	}
	var impressions, clicks int64
	for _, ad := range s.ads {
		impressions += ad.Impressions
		clicks += ad.Clicks
	}

	start := u.now().UTC().AddDate(0, 0, -(trendDays - 1))
	t := &port.Trends{
		Dates:       make([]string, trendDays),
		Impressions: make([]int64, trendDays),
		Clicks:      make([]int64, trendDays),
	}
	for i := 0; i < trendDays; i++ {
		t.Dates[i] = start.AddDate(0, 0, i).Format(time.DateOnly)
		t.Impressions[i] = impressions / trendDays
		t.Clicks[i] = clicks / trendDays
	}
	return t, nil
}

// CampaignPerformance returns per-campaign metrics in catalog order.
func (u *AnalyticsUseCase) CampaignPerformance(ctx context.Context) ([]port.CampaignMetrics, error) {
	s, err := u.load(ctx, true, true)
	if err != nil {
		return nil, err
	}
	return campaignMetrics(s), nil
}

// TopCampaigns returns the three campaigns with the best CTR.
func (u *AnalyticsUseCase) TopCampaigns(ctx context.Context) ([]port.CampaignMetrics, error) {
	metrics, err := u.CampaignPerformance(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(metrics, func(i, j int) bool { return metrics[i].CTR > metrics[j].CTR })
	if len(metrics) > topCampaignCount {
		metrics = metrics[:topCampaignCount]
	}
	return metrics, nil
}

// AdPerformance returns per-ad metrics. Spend is estimated as maxCpc × clicks.
func (u *AnalyticsUseCase) AdPerformance(ctx context.Context) ([]port.AdMetrics, error) {
	s, err := u.load(ctx, false, false)
	if err != nil {
		return nil, err
	}
	out := make([]port.AdMetrics, 0, len(s.ads))
	for _, ad := range s.ads {
		out = append(out, port.AdMetrics{
			ID:          ad.ID,
			Title:       ad.Title,
			Impressions: ad.Impressions,
			Clicks:      ad.Clicks,
			CTR:         ratePercent(ad.Clicks, ad.Impressions),
			Spend:       ad.MaxCPC.Mul(decimal.NewFromInt(ad.Clicks)),
		})
	}
	return out, nil
}

func campaignMetrics(s *snapshot) []port.CampaignMetrics {
	groupCampaign := make(map[string]string, len(s.adGroups))
	for _, g := range s.adGroups {
		groupCampaign[g.ID] = g.CampaignID
	}
	type counters struct{ impressions, clicks int64 }
	perCampaign := make(map[string]*counters)
	for _, ad := range s.ads {
		cid, ok := groupCampaign[ad.AdGroupID]
		if !ok {
			continue
		}
		c := perCampaign[cid]
		if c == nil {
			c = &counters{}
			perCampaign[cid] = c
		}
		c.impressions += ad.Impressions
		c.clicks += ad.Clicks
	}

	out := make([]port.CampaignMetrics, 0, len(s.campaigns))
	for _, camp := range s.campaigns {
		m := port.CampaignMetrics{ID: camp.ID, Name: camp.Name, Spend: camp.Budget}
		if c := perCampaign[camp.ID]; c != nil {
			m.Impressions = c.impressions
			m.Clicks = c.clicks
			m.CTR = ratePercent(c.clicks, c.impressions)
		}
		out = append(out, m)
	}
	return out
}

// ratePercent returns part/total as a percentage, 0 for an empty total.
func ratePercent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func trend(up bool) string {
	if up {
		return port.TrendUp
	}
	return port.TrendDown
}
