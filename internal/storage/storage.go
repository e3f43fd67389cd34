package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib" // Import the driver
)

const (
	connectAttempts = 10
	connectDelay    = 2 * time.Second
)

type Storage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// Connect opens the database and waits for it to answer a ping.
func Connect(ctx context.Context, url string) (*sql.DB, error) {
	var err error
	for i := 0; i < connectAttempts; i++ {
		var db *sql.DB
		db, err = sql.Open("pgx", url)
		if err == nil {
			if err = db.PingContext(ctx); err == nil {
				return db, nil
			}
			db.Close()
		}
		log.Printf("Waiting for DB... (%v)", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectDelay):
		}
	}
	return nil, fmt.Errorf("could not connect to DB after %d attempts: %w", connectAttempts, err)
}
