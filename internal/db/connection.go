// Package db provides database connection and management utilities.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/benx421/payment-gateway/pos/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	// Import postgres driver for registration with database/sql)
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrations embed.FS

const initMigration = "migrations/000001_init.up.sql"

// DB wraps the gorm handle and the underlying connection pool
type DB struct {
	*gorm.DB
	pool   *sql.DB
	logger *slog.Logger
}

// Connect establishes a connection to the database
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logCfg *config.LoggerConfig, logger *slog.Logger) (*DB, error) {
	logger.Info("connecting to database",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
	)

	pool, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Error("failed to open database connection", "error", err)
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		logger.Error("failed to ping database", "error", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database, err := Wrap(pool, logCfg.Debug(), logger)
	if err != nil {
		_ = pool.Close()
		return nil, err
	}

	logger.Info("successfully connected to database",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime,
	)

	return database, nil
}

// Wrap opens gorm on top of an existing connection pool.
func Wrap(pool *sql.DB, debug bool, logger *slog.Logger) (*DB, error) {
	logLevel := gormlogger.Silent
	if debug {
		logLevel = gormlogger.Info
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		logger.Error("failed to initialise gorm", "error", err)
		return nil, fmt.Errorf("failed to initialise gorm: %w", err)
	}

	return &DB{
		DB:     gormDB,
		pool:   pool,
		logger: logger,
	}, nil
}

// Migrate applies the embedded schema. Statements are idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	script, err := migrations.ReadFile(initMigration)
	if err != nil {
		return fmt.Errorf("failed to read migration: %w", err)
	}

	if _, err := db.pool.ExecContext(ctx, string(script)); err != nil {
		db.logger.Error("failed to apply migration", "migration", initMigration, "error", err)
		return fmt.Errorf("failed to apply migration: %w", err)
	}

	db.logger.Info("database schema is up to date", "migration", initMigration)
	return nil
}

// PingContext checks that the database is reachable.
func (db *DB) PingContext(ctx context.Context) error {
	return db.pool.PingContext(ctx)
}

// Close closes the database connection and logs the closure.
func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.pool.Close()
}
