package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wayfare/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() (*gorm.DB, error) {
	return infra.NewPostgresDB()
}
