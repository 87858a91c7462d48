package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/3digitdev/baas/internal/db/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	connectAttempts = 5
	connectDelay    = 2 * time.Second
)

func dsn() string {
	host := os.Getenv("SQL_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("SQL_PORT")
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv("SQL_USER"), os.Getenv("SQL_PASSWORD"),
		host, port, os.Getenv("SQL_DB"),
	)
}

// Connect opens the pool and pings it with a bounded number of retries so the
// service survives the database coming up slower than the process.
func Connect() (*pgxpool.Pool, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn())
	if err != nil {
		return nil, err
	}
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if err = pool.Ping(ctx); err == nil {
			return pool, nil
		}
		log.Printf("db not ready (attempt %d/%d): %v", attempt, connectAttempts, err)
		time.Sleep(connectDelay)
	}
	pool.Close()
	return nil, fmt.Errorf("unable to connect to db after %d attempts: %w", connectAttempts, err)
}

// Migrate runs the embedded schema migrations through the stdlib pgx driver.
func Migrate(ctx context.Context) error {
	sqlDB, err := sql.Open("pgx", dsn())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, sqlDB, ".")
}
