package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-billing/internal/config/configs"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{"AUTH_SECRET": "s"}})
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Billing.DefaultThreshold.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 3, cfg.Billing.MaxRetries)
	assert.Equal(t, configs.LockBackendMemory, cfg.Lock.Normalized())
	assert.Equal(t, 10*time.Second, cfg.Lock.TTL)
	assert.Equal(t, configs.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"AUTH_SECRET":               "s",
		"HTTP_PORT":                 "9090",
		"HTTP_ALLOWED_ORIGINS":      "https://a.example,https://b.example",
		"BILLING_DEFAULT_THRESHOLD": "75.50",
		"LOCK_BACKEND":              "Redis",
		"LOG_FORMAT":                "JSON",
	}})
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Len(t, cfg.HTTP.AllowedOrigins, 2)
	assert.True(t, cfg.Billing.DefaultThreshold.Equal(decimal.RequireFromString("75.5")))
	assert.Equal(t, configs.LockBackendRedis, cfg.Lock.Normalized())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestParseRequiresSecret(t *testing.T) {
	_, err := parse(env.Options{Environment: map[string]string{}})
	require.Error(t, err)
}

func TestParseRejectsBadDecimal(t *testing.T) {
	_, err := parse(env.Options{Environment: map[string]string{
		"AUTH_SECRET":               "s",
		"BILLING_DEFAULT_THRESHOLD": "fifty",
	}})
	require.Error(t, err)
}
