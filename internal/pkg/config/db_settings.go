package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported values for DatabaseSettings.Type.
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

var ErrPostgresTarget = errors.New("postgres requires both dsn and name")

// DatabaseSettings holds the connection settings of the relational store.
// For postgres DSN addresses the server and Name the database created on
// first start. For sqlite DSN is a file name or empty for an in-memory store.
type DatabaseSettings struct {
	Type            string        `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN             string        `mapstructure:"dsn"`
	Name            string        `mapstructure:"name"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// Validate checks the settings for the selected driver.
func (s *DatabaseSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	if s.Type == PostgresDbType && (s.DSN == "" || s.Name == "") {
		return ErrPostgresTarget
	}
	return nil
}
