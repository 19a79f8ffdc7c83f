package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cafe-bot/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	maxRetries = 10
	retryDelay = 2 * time.Second
	pingTTL    = 5 * time.Second
)

func DSN(cfg config.DatabaseConfig) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, sslmode)
}

// ConnectDB открывает пул через pgx stdlib и ждёт, пока база ответит на ping.
func ConnectDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := DSN(cfg)

	var db *sql.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			select {
			case <-time.After(retryDelay):
				continue
			case <-ctx.Done():
				return nil, fmt.Errorf("db open canceled: %w", ctx.Err())
			}
		}

		pctx, cancel := context.WithTimeout(ctx, pingTTL)
		err = db.PingContext(pctx)
		cancel()
		if err == nil {
			return db, nil
		}

		_ = db.Close()

		select {
		case <-time.After(retryDelay):
			continue
		case <-ctx.Done():
			return nil, fmt.Errorf("db ping canceled: %w", ctx.Err())
		}
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxRetries, err)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		client_id         TEXT PRIMARY KEY,
		full_name         TEXT NOT NULL,
		phone             TEXT NOT NULL,
		email             TEXT,
		favorite_drink    TEXT,
		preferences       JSONB NOT NULL DEFAULT '[]',
		registration_date TIMESTAMPTZ NOT NULL,
		source            TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS clients_phone_idx ON clients (phone)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id             TEXT PRIMARY KEY,
		client_name          TEXT NOT NULL,
		phone                TEXT,
		tea_type             TEXT NOT NULL,
		sugar_percentage     NUMERIC(5,2) NOT NULL,
		ice_level            TEXT NOT NULL,
		size                 TEXT NOT NULL,
		special_instructions TEXT,
		order_date           TIMESTAMPTZ NOT NULL,
		estimated_ready_time TIMESTAMPTZ NOT NULL,
		status               TEXT NOT NULL,
		total_price          NUMERIC(8,2) NOT NULL,
		source               TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_toppings (
		order_id TEXT NOT NULL REFERENCES orders(order_id),
		position INT  NOT NULL,
		name     TEXT NOT NULL,
		PRIMARY KEY (order_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id          TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		feedback    TEXT NOT NULL,
		email       TEXT,
		phone       TEXT,
		rating      JSONB,
		category    TEXT NOT NULL,
		date        TIMESTAMPTZ NOT NULL,
		status      TEXT NOT NULL,
		source      TEXT NOT NULL
	)`,
}

// EnsureSchema создаёт таблицы, если их ещё нет (идемпотентно).
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
