package database

import (
	"embed"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// The schema ships inside the binary so a deployment is a single
// executable plus environment variables.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationURL reads the database URL straight from the environment so the
// migrate subcommand works without a Discord token or guild id configured.
func migrationURL() string {
	return os.Getenv("DATABASE_URL")
}

// MigrateUp applies every pending schema migration.
func MigrateUp() error {
	if err := ApplyMigrations(migrationURL()); err != nil {
		return err
	}
	log.Println("killboard schema is up to date")
	return nil
}

// MigrateDown rolls back the given number of schema migrations.
func MigrateDown(steps int) error {
	m, err := newMigrator(migrationURL())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil {
		if err == migrate.ErrNoChange {
			log.Println("killboard schema has nothing to roll back")
			return nil
		}
		return fmt.Errorf("failed to roll back %d migration(s): %w", steps, err)
	}

	version, _, verr := m.Version()
	if verr == migrate.ErrNilVersion {
		log.Println("killboard schema rolled back to empty")
	} else {
		log.Printf("killboard schema rolled back to version %d", version)
	}
	return nil
}

// MigrateStatus reports the current schema version.
func MigrateStatus() error {
	m, err := newMigrator(migrationURL())
	if err != nil {
		return err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		log.Println("killboard schema has no migrations applied yet")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if dirty {
		log.Printf("killboard schema at version %d, dirty: a migration failed partway and needs manual repair", version)
	} else {
		log.Printf("killboard schema at version %d", version)
	}
	return nil
}

// ApplyMigrations runs all pending migrations against the given database.
// The repository integration tests point it at per-test containers.
func ApplyMigrations(databaseURL string) error {
	m, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// newMigrator builds a migrate instance over the embedded schema files.
// golang-migrate drives a database/sql connection, so the pgx config is
// bridged through stdlib instead of reusing the bot's pool.
func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	db := stdlib.OpenDB(*cfg.ConnConfig)
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}
