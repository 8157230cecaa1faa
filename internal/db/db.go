package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"coride/internal/config"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// NewPostgres returns a connected GORM DB instance.
func NewPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// Open connects to the SQL database selected by cfg.DataSource.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DataSource {
	case config.DataSourceMySQL:
		return NewMySQL(cfg.MySQLDSN)
	case config.DataSourcePostgres:
		return NewPostgres(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("data source %q is not a SQL database", cfg.DataSource)
	}
}
