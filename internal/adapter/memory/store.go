package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

// Store is a map-backed implementation of the billing, catalog and user
// repositories. It mirrors the postgres adapter's semantics, including
// version checks on billing accounts, and is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]domain.BillingAccount
	campaigns []domain.Campaign
	adGroups  []domain.AdGroup
	ads       []domain.Ad
	users     []domain.User
}

var (
	_ port.BillingRepository = (*Store)(nil)
	_ port.CatalogRepository = (*Store)(nil)
	_ port.UserRepository    = (*Store)(nil)
)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{accounts: make(map[string]domain.BillingAccount)}
}

func (s *Store) GetBillingAccount(_ context.Context, userID string) (*domain.BillingAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[userID]
	if !ok {
		return nil, nil
	}
	return cloneAccount(a), nil
}

func (s *Store) CreateBillingAccount(_ context.Context, acct *domain.BillingAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[acct.UserID]; ok {
		return domain.ErrAccountExists
	}
	now := time.Now().UTC()
	acct.Version = 1
	acct.CreatedAt = now
	acct.UpdatedAt = now
	s.accounts[acct.UserID] = *cloneAccount(*acct)
	return nil
}

func (s *Store) UpdateBillingAccount(_ context.Context, acct *domain.BillingAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.accounts[acct.UserID]
	if !ok || cur.Version != acct.Version {
		return domain.ErrVersionConflict
	}
	acct.Version++
	acct.CreatedAt = cur.CreatedAt
	acct.UpdatedAt = time.Now().UTC()
	s.accounts[acct.UserID] = *cloneAccount(*acct)
	return nil
}

func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = domain.CampaignStatusActive
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	s.campaigns = append(s.campaigns, *c)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.campaigns, func(c domain.Campaign) bool { return c.ID == id })
	if i < 0 {
		return nil, nil
	}
	c := s.campaigns[i]
	return &c, nil
}

func (s *Store) ListCampaigns(_ context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Store) DeleteCampaign(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.campaigns)
	s.campaigns = slices.DeleteFunc(s.campaigns, func(c domain.Campaign) bool { return c.ID == id })
	if len(s.campaigns) == n {
		return domain.ErrNotFound
	}
	var groups []string
	s.adGroups = slices.DeleteFunc(s.adGroups, func(g domain.AdGroup) bool {
		if g.CampaignID == id {
			groups = append(groups, g.ID)
			return true
		}
		return false
	})
	s.ads = slices.DeleteFunc(s.ads, func(a domain.Ad) bool { return slices.Contains(groups, a.AdGroupID) })
	return nil
}

func (s *Store) CreateAdGroup(_ context.Context, g *domain.AdGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.ContainsFunc(s.campaigns, func(c domain.Campaign) bool { return c.ID == g.CampaignID }) {
		return domain.ErrNotFound
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.CreatedAt = time.Now().UTC()
	g.Keywords = slices.Clone(g.Keywords)
	s.adGroups = append(s.adGroups, *g)
	return nil
}

func (s *Store) ListAdGroups(_ context.Context, f port.AdGroupFilter) ([]domain.AdGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AdGroup, 0, len(s.adGroups))
	for _, g := range s.adGroups {
		if f.CampaignID != "" && g.CampaignID != f.CampaignID {
			continue
		}
		g.Keywords = slices.Clone(g.Keywords)
		out = append(out, g)
	}
	return out, nil
}

func (s *Store) CreateAd(_ context.Context, ad *domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.ContainsFunc(s.adGroups, func(g domain.AdGroup) bool { return g.ID == ad.AdGroupID }) {
		return domain.ErrNotFound
	}
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	ad.CreatedAt = time.Now().UTC()
	s.ads = append(s.ads, *ad)
	return nil
}

func (s *Store) GetAd(_ context.Context, id string) (*domain.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.ads, func(a domain.Ad) bool { return a.ID == id })
	if i < 0 {
		return nil, nil
	}
	ad := s.ads[i]
	return &ad, nil
}

func (s *Store) ListAds(_ context.Context, f port.AdFilter) ([]domain.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ad, 0, len(s.ads))
	for _, ad := range s.ads {
		if f.AdGroupID != "" && ad.AdGroupID != f.AdGroupID {
			continue
		}
		out = append(out, ad)
	}
	return out, nil
}

func (s *Store) IncrementAdCounters(_ context.Context, id string, impressions, clicks int64) (*domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.ads, func(a domain.Ad) bool { return a.ID == id })
	if i < 0 {
		return nil, nil
	}
	s.ads[i].Impressions += impressions
	s.ads[i].Clicks += clicks
	ad := s.ads[i]
	return &ad, nil
}

func (s *Store) CreateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.ContainsFunc(s.users, func(x domain.User) bool { return x.Email == u.Email }) {
		return domain.ErrAlreadyExists
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Language == "" {
		u.Language = "en"
	}
	if u.Timezone == "" {
		u.Timezone = "UTC"
	}
	u.CreatedAt = time.Now().UTC()
	s.users = append(s.users, *u)
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.users, func(u domain.User) bool { return u.Email == email })
	if i < 0 {
		return nil, nil
	}
	u := s.users[i]
	return &u, nil
}

// cloneAccount detaches the pointer fields so callers cannot mutate stored
// state.
func cloneAccount(a domain.BillingAccount) *domain.BillingAccount {
	if a.PaymentMethod != nil {
		pm := *a.PaymentMethod
		a.PaymentMethod = &pm
	}
	if a.LastInvoiceDate != nil {
		t := *a.LastInvoiceDate
		a.LastInvoiceDate = &t
	}
	return &a
}
