package storage

import (
	"database/sql"
	"time"

	"product-scraper/pkg/models"
)

const createProductsTable = `
	CREATE TABLE IF NOT EXISTS products (
		id         BIGSERIAL PRIMARY KEY,
		position   INTEGER NOT NULL,
		url        TEXT,
		image      TEXT,
		name       TEXT,
		price      TEXT,
		scraped_at TIMESTAMPTZ NOT NULL
	)`

// ProductSink implements engine.Sink for saving products to Postgres.
// Absent fields are stored as NULL; nothing is deduplicated.
type ProductSink struct {
	*Storage
}

func NewProductSink(db *sql.DB) *ProductSink {
	return &ProductSink{Storage: NewStorage(db)}
}

// EnsureSchema creates the products table if it does not exist yet.
func (s *ProductSink) EnsureSchema() error {
	_, err := s.db.Exec(createProductsTable)
	return err
}

// Save inserts the whole batch in one transaction. Any failed row rolls back
// the batch.
func (s *ProductSink) Save(batch []models.Product) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO products (position, url, image, name, price, scraped_at)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	scrapedAt := time.Now()
	for i, p := range batch {
		_, err := stmt.Exec(
			i,
			nullString(p.URL),
			nullString(p.Image),
			nullString(p.Name),
			nullString(p.Price),
			scrapedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func nullString(field models.Optional[string]) sql.NullString {
	v, ok := field.Get()
	return sql.NullString{String: v, Valid: ok}
}
