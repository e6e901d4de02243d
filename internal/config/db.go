package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// DSN returns DB_DSN when set, otherwise builds one from the DB_* parts.
// A custom DSN always gets parseTime and clientFoundRows forced on;
// repositories treat zero affected rows as a missing record.
func (e Env) DSN() string {
	if e.DBDSN != "" {
		cfg, err := mysql.ParseDSN(e.DBDSN)
		if err != nil {
			return e.DBDSN
		}
		cfg.ParseTime = true
		cfg.ClientFoundRows = true
		return cfg.FormatDSN()
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s&clientFoundRows=true",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBName,
	)
}

// ConnectDB opens the shared pool once at startup. The handle is passed to
// repositories explicitly.
func ConnectDB(env Env) (*sql.DB, error) {
	db, err := sql.Open("mysql", env.DSN())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}
