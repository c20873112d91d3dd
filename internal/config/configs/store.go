package configs

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects the entity store. The memory driver keeps everything in
// process and is meant for demos and local development.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
