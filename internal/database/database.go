package database

import (
	"fmt"
	"strings"
	"time"

	"space-missions-api/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" database/sql driver
)

// Driver identifies the engine behind a connection string
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Options tunes the connection pool and migration. Zero values take the
// defaults applied in Initialize.
//
// The pool fields only apply to PostgreSQL. SQLite always runs on a single
// connection with no lifetime limits, so MaxOpenConns, MaxIdleConns,
// ConnMaxLifetime and ConnMaxIdleTime are ignored for it.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens the store named by uri and creates the schema from the GORM
// models unless opts.SkipMigrate is set.
//
// postgres:// and postgresql:// URIs use PostgreSQL; sqlite://<path> or a bare
// path uses SQLite with foreign keys enforced.
func Initialize(uri string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	dialector, driver, err := Dialector(uri)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		NamingStrategy: NamingConvention(),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if driver == DriverSQLite {
			// SQLite allows a single writer; one connection also keeps
			// in-memory databases alive and shared.
			sqlDB.SetMaxOpenConns(1)
			sqlDB.SetMaxIdleConns(1)
			sqlDB.SetConnMaxLifetime(0)
			sqlDB.SetConnMaxIdleTime(0)
		} else {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
			sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
			sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
			sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
		}
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the scientists, planets and missions tables.
// Parents are listed before missions so the foreign keys resolve.
func Migrate(db *gorm.DB) error {
	all := []interface{}{
		&models.Scientist{},
		&models.Planet{},
		&models.Mission{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Dialector picks the GORM dialector for uri
func Dialector(uri string) (gorm.Dialector, Driver, error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == "":
		return nil, "", fmt.Errorf("database URI is empty")
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return postgres.Open(uri), DriverPostgres, nil
	case strings.HasPrefix(uri, "sqlite://"):
		return sqliteDialector(strings.TrimPrefix(uri, "sqlite://")), DriverSQLite, nil
	case strings.Contains(uri, "://"):
		return nil, "", fmt.Errorf("unsupported database URI scheme: %s", uri)
	default:
		return sqliteDialector(uri), DriverSQLite, nil
	}
}

func sqliteDialector(path string) gorm.Dialector {
	return sqlite.New(sqlite.Config{
		DriverName: "sqlite",
		DSN:        SQLiteDSN(path),
	})
}

// SQLiteDSN appends the pragmas every connection needs: foreign key
// enforcement and a busy timeout.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// ParseLogLevel maps a config string to a GORM log level
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "warn":
		return logger.Warn
	case "info", "debug":
		return logger.Info
	default:
		return logger.Error
	}
}
