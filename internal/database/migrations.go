package database

import (
	"errors"
	"fmt"
	"path/filepath"

	m "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/trends/trends_api/internal/config"
	"github.com/trends/trends_api/internal/logging"
)

func sourceURL(migrationsPath string) (string, error) {
	abs, err := filepath.Abs(migrationsPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func setupMigrations(pool *pgxpool.Pool, conf config.DBConfig) (*m.Migrate, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)

	driver, err := pgx.WithInstance(sqlDB, &pgx.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	source, err := sourceURL(conf.MigrationsPath)
	if err != nil {
		return nil, err
	}

	migrate, err := m.NewWithDatabaseInstance(source, conf.Name, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	version, dirty, err := migrate.Version()
	if err != nil && !errors.Is(err, m.ErrNilVersion) {
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		return nil, fmt.Errorf("database is in dirty state (version %d), please fix manually", version)
	}

	return migrate, nil
}

func RunMigrations(pool *pgxpool.Pool, conf config.DBConfig, logger *logging.Logger) error {
	migrate, err := setupMigrations(pool, conf)
	if err != nil {
		return fmt.Errorf("failed to setup migrations: %w", err)
	}

	log := logger.WithComponent(logging.DatabaseComponent)
	if err := migrate.Up(); err != nil {
		if errors.Is(err, m.ErrNoChange) {
			log.Info("schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if version, _, err := migrate.Version(); err == nil {
		log.WithField("version", version).Info("migrations applied")
	}

	return nil
}

func DownMigrations(pool *pgxpool.Pool, conf config.DBConfig) error {
	migrate, err := setupMigrations(pool, conf)
	if err != nil {
		return fmt.Errorf("failed to setup migrations: %w", err)
	}

	if err := migrate.Down(); err != nil {
		if errors.Is(err, m.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("failed to down migrations: %w", err)
	}

	return nil
}
