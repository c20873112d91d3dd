package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"mesa-billing/db/migrations"
)

// Migrate applies all up migrations embedded in the migrations package.
// The connection goes through database/sql and the lib/pq driver, see
// OpenSQL.
func Migrate(addr string) error {
	sqlDB, err := OpenSQL(addr)
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		_ = sqlDB.Close()
		return err
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		_ = src.Close()
		_ = sqlDB.Close()
		return fmt.Errorf("migrate driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return err
	}
	// closes the source, the driver and sqlDB
	defer mg.Close()

	return apply(mg)
}

func apply(mg *migrate.Migrate) error {
	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// OpenSQL opens a database/sql handle using lib/pq and verifies it.
func OpenSQL(addr string) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", addr)
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return sqlDB, nil
}
