package database

import (
	"log"
	"strings"

	"dreamsproperty/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the CGO-free "sqlite" driver used below
	_ "modernc.org/sqlite"
)

// Connect opens the relational store. Postgres DSNs go through the pgx
// driver; anything else is treated as a SQLite path (local development and
// the test suite).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the properties table if it does not exist. Safe to run
// on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Property{})
}
