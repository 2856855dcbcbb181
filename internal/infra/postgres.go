package infra

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"wayfare/internal/models/db_models"
)

func NewPostgresDB() (*gorm.DB, error) {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(
			&db_models.City{},
			&db_models.Place{},
			&db_models.Route{},
		); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Println("database migrations applied")
	}

	return db, nil
}
