package persistence

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/persistence/models"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
)

const sqliteMemoryDSN = ":memory:"

// NewDBConnection opens the store described by settings. A postgres target
// database is created on first use. SQLite is limited to one connection so
// writers never hit "database is locked" and an in-memory store survives.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var (
		dialector gorm.Dialector
		maxConns  = settings.MaxOpenConns
	)

	switch settings.Type {
	case config.PostgresDbType:
		if settings.Name != "" {
			if err := ensurePostgresDatabase(settings.DSN, settings.Name); err != nil {
				return nil, err
			}
		}
		dialector = postgres.Open(postgresDSN(settings.DSN, settings.Name))
	case config.SqliteDbType:
		dsn := settings.DSN
		if dsn == "" {
			dsn = sqliteMemoryDSN
		}
		dialector = sqlite.Open(dsn)
		maxConns = 1
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}

	db, err := openGorm(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", settings.Type, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	if maxConns > 0 {
		sqlDB.SetMaxOpenConns(maxConns)
	}
	if settings.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)
	}
	return db, nil
}

// gormConfig turns driver errors such as unique violations into gorm's
// portable sentinels so repositories can map them to domain errors.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func openGorm(d gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(d, gormConfig())
}

func postgresDSN(serverDSN, name string) string {
	if name == "" {
		return serverDSN
	}
	return fmt.Sprintf("%s dbname=%s", serverDSN, name)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// ensurePostgresDatabase creates name on the server unless it already exists.
func ensurePostgresDatabase(serverDSN, name string) error {
	admin, err := openGorm(postgres.Open(serverDSN))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	var exists bool
	err = admin.Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", name).Scan(&exists).Error
	if err == nil && !exists {
		err = admin.Exec("CREATE DATABASE " + quoteIdent(name)).Error
	}
	if err != nil {
		err = fmt.Errorf("failed to create database '%s': %w", name, err)
	}
	return errors.Join(err, CloseDB(admin))
}

// Migrate creates or updates the schema of every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB releases the pool behind db.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase removes a PostgreSQL database created for a test run.
func DropDatabase(adminDSN, dbName string) error {
	admin, err := openGorm(postgres.Open(adminDSN))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	err = admin.Exec("DROP DATABASE IF EXISTS " + quoteIdent(dbName)).Error
	if err != nil {
		err = fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return errors.Join(err, CloseDB(admin))
}
