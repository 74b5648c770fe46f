package database

import (
	"fmt"
	"log/slog"

	"buyit/internal/config"
	"buyit/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table the record store owns.
var Models = []any{
	&model.Request{},
	&model.Approval{},
	&model.PurchaseOrder{},
	&model.Invoice{},
	&model.AuditLog{},
}

// NewConnection opens the configured database and migrates the schema.
func NewConnection(cfg config.Config, log *slog.Logger) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := open(postgres.Open(cfg.PostgresDSN()))
		if err != nil {
			return nil, err
		}
		log.Info("connected to PostgreSQL", "host", cfg.DBHost, "db", cfg.DBName)
		return db, Migrate(db)
	case config.DriverSQLite:
		return NewSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// NewSQLite opens a SQLite file and migrates it. SQLite has a single writer,
// so the pool is pinned to one connection and transactions queue on it.
func NewSQLite(path string) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := open(sqlite.Open(dsn))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, Migrate(db)
}

// Migrate creates or updates every table and index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
