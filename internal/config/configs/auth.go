package configs

import "time"

// Auth configures bearer token verification.
type Auth struct {
	Secret   string        `env:"SECRET,required"`
	Issuer   string        `env:"ISSUER" envDefault:"mesa-billing"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"60m"`
}
