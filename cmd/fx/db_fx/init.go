package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/config"
	"wayfarer/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitSQLite(cfg.SQLitePath)
}
