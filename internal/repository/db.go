package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

// ErrNoDSN is returned when event recording is not configured.
var ErrNoDSN = errors.New("database dsn is empty")

// NewDB opens a MySQL pool for dsn. Rows are scanned into time.Time, so
// parseTime is forced on whatever the DSN says.
func NewDB(dsn string) (*sql.DB, error) {
	cfg, err := mysqlConfig(dsn)
	if err != nil {
		return nil, err
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed, continuing without a verified connection",
			"addr", cfg.Addr, "db", cfg.DBName, "error", err)
	}

	return db, nil
}

func mysqlConfig(dsn string) (*mysql.Config, error) {
	if dsn == "" {
		return nil, ErrNoDSN
	}
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing database dsn: %w", err)
	}
	cfg.ParseTime = true
	return cfg, nil
}
