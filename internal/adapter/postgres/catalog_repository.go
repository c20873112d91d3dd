package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

// CatalogRepository implements port.CatalogRepository using pgxpool.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

var _ port.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

const (
	campaignColumns = `id::text, name, start_date, end_date, budget, status, created_at, updated_at`
	adGroupColumns  = `id::text, campaign_id::text, name, keywords, created_at`
	adColumns       = `id::text, ad_group_id::text, title, description, target_url, max_cpc, impressions, clicks, created_at`
)

// CreateCampaign inserts c, generating an ID when empty.
func (r *CatalogRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = domain.CampaignStatusActive
	}
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (id, name, start_date, end_date, budget, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now())
RETURNING created_at, updated_at`,
		c.ID, c.Name, c.StartDate, c.EndDate, c.Budget, c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// GetCampaign returns a campaign by id.
func (r *CatalogRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns campaigns ordered by creation time.
func (r *CatalogRepository) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	var args []any
	if f.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, f.Status)
	}
	rows, err := r.pool.Query(ctx, query+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// DeleteCampaign removes a campaign; ad groups and ads cascade.
func (r *CatalogRepository) DeleteCampaign(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateAdGroup inserts g. An unknown campaign yields domain.ErrNotFound.
func (r *CatalogRepository) CreateAdGroup(ctx context.Context, g *domain.AdGroup) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Keywords == nil {
		g.Keywords = []string{}
	}
	err := r.pool.QueryRow(ctx, `INSERT INTO ad_groups (id, campaign_id, name, keywords, created_at)
VALUES ($1,$2,$3,$4,now())
RETURNING created_at`,
		g.ID, g.CampaignID, g.Name, g.Keywords,
	).Scan(&g.CreatedAt)
	return mapWriteErr(err)
}

// ListAdGroups returns ad groups, optionally of one campaign.
func (r *CatalogRepository) ListAdGroups(ctx context.Context, f port.AdGroupFilter) ([]domain.AdGroup, error) {
	query := `SELECT ` + adGroupColumns + ` FROM ad_groups`
	var args []any
	if f.CampaignID != "" {
		query += ` WHERE campaign_id::text = $1`
		args = append(args, f.CampaignID)
	}
	rows, err := r.pool.Query(ctx, query+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdGroup, error) {
		var g domain.AdGroup
		err := row.Scan(&g.ID, &g.CampaignID, &g.Name, &g.Keywords, &g.CreatedAt)
		return g, err
	})
}

// CreateAd inserts ad. An unknown ad group yields domain.ErrNotFound.
func (r *CatalogRepository) CreateAd(ctx context.Context, ad *domain.Ad) error {
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx, `INSERT INTO ads
    (id, ad_group_id, title, description, target_url, max_cpc, impressions, clicks, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now())
RETURNING created_at`,
		ad.ID, ad.AdGroupID, ad.Title, ad.Description, ad.TargetURL, ad.MaxCPC, ad.Impressions, ad.Clicks,
	).Scan(&ad.CreatedAt)
	return mapWriteErr(err)
}

// GetAd returns an ad by id.
func (r *CatalogRepository) GetAd(ctx context.Context, id string) (*domain.Ad, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return collectAd(rows)
}

// ListAds returns ads, optionally of one ad group.
func (r *CatalogRepository) ListAds(ctx context.Context, f port.AdFilter) ([]domain.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads`
	var args []any
	if f.AdGroupID != "" {
		query += ` WHERE ad_group_id::text = $1`
		args = append(args, f.AdGroupID)
	}
	rows, err := r.pool.Query(ctx, query+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAd)
}

// IncrementAdCounters adds to the counters in a single UPDATE.
func (r *CatalogRepository) IncrementAdCounters(ctx context.Context, id string, impressions, clicks int64) (*domain.Ad, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `UPDATE ads
SET impressions = impressions + $2, clicks = clicks + $3
WHERE id = $1
RETURNING `+adColumns, id, impressions, clicks)
	if err != nil {
		return nil, err
	}
	return collectAd(rows)
}

func collectAd(rows pgx.Rows) (*domain.Ad, error) {
	ad, err := pgx.CollectOneRow(rows, scanAd)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate, &c.Budget, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanAd(row pgx.CollectableRow) (domain.Ad, error) {
	var ad domain.Ad
	err := row.Scan(&ad.ID, &ad.AdGroupID, &ad.Title, &ad.Description, &ad.TargetURL, &ad.MaxCPC,
		&ad.Impressions, &ad.Clicks, &ad.CreatedAt)
	return ad, err
}

// mapWriteErr reports a missing parent row as domain.ErrNotFound.
func mapWriteErr(err error) error {
	if hasCode(err, foreignKeyViolation) {
		return domain.ErrNotFound
	}
	return err
}
