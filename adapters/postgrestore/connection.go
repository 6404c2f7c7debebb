package postgrestore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/shopcloud/backend/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Options struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	Debug        bool
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		DSN:          c.DB.DSN,
		MaxOpenConns: c.DB.MaxOpenConns,
		MaxIdleConns: c.DB.MaxIdleConns,
		Debug:        c.Debug,
	}
}

func NewConnection(opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(opts.DSN), GormConfig(opts.Debug))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// NewSqlxConnection opens the lib/pq connection used by the report queries
// and the migrations.
func NewSqlxConnection(opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)

	return db, nil
}

func GormConfig(debug bool) *gorm.Config {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}
}

// Migrate applies the pending migrations. dialect is a sql-migrate dialect
// name ("postgres", "sqlite3").
func Migrate(db *sql.DB, dialect string) (int, error) {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}

	n, err := migrate.Exec(db, dialect, source, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	return n, nil
}
