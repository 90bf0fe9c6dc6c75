// Package db opens the database connection and keeps the schema current
package db

import (
	"fmt"

	"bucketlist/bucket-api/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the configured database and migrates the schema. Postgres is
// the production driver. SQLite exists for local development and expects
// a DSN with foreign keys enabled, e.g. "bucketlist.db?_foreign_keys=on"
func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	driver := viper.GetString("database.driver")

	switch driver {
	case "postgres":
		dial = postgres.Open(viper.GetString("database.dsn"))
	case "sqlite":
		dial = sqlite.Open(viper.GetString("database.dsn"))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database, %w", driver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the four tables with their FK cascades and, on Postgres,
// the derived search vector columns. The vectors are STORED generated
// columns so they recompute on every write and can never be set on their own
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return fmt.Errorf("failed to enable foreign keys, %w", err)
		}
	}

	err := db.AutoMigrate(model.User{}, model.Category{}, model.Bucket{}, model.Activity{})
	if err != nil {
		return fmt.Errorf("failed to automigrate tables, %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	for _, stmt := range []string{
		`ALTER TABLE buckets ADD COLUMN IF NOT EXISTS search_vector tsvector
			GENERATED ALWAYS AS (to_tsvector('english', coalesce(bucket_name, '') || ' ' || coalesce(description, ''))) STORED`,
		`CREATE INDEX IF NOT EXISTS idx_buckets_search_vector ON buckets USING gin (search_vector)`,
		`ALTER TABLE activities ADD COLUMN IF NOT EXISTS search_vector tsvector
			GENERATED ALWAYS AS (to_tsvector('english', coalesce(description, ''))) STORED`,
		`CREATE INDEX IF NOT EXISTS idx_activities_search_vector ON activities USING gin (search_vector)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to set up search vectors, %w", err)
		}
	}

	return nil
}
