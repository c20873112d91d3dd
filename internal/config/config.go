package config

import (
	"errors"
	"io/fs"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"mesa-billing/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis   configs.Redis   `envPrefix:"REDIS_"`
	Auth    configs.Auth    `envPrefix:"AUTH_"`
	Billing configs.Billing `envPrefix:"BILLING_"`
	Lock    configs.Lock    `envPrefix:"LOCK_"`
	Store   configs.Store   `envPrefix:"STORE_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory, if present, is loaded first without
// overriding variables that are already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	opts.FuncMap = map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(decimal.Decimal{}): func(v string) (any, error) {
			return decimal.NewFromString(v)
		},
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, err
	}
	return cfg, nil
}
