package engine

import (
	"context"
	"fmt"
	"iter"
	"log"
	"os"

	"product-scraper/internal/crawler"
)

// Processor defines how to crawl a single page.
// It returns the extracted data items (T) in document order.
type Processor[T any] interface {
	Process(ctx context.Context, page int) ([]T, error)
}

// Sink defines how to persist the data.
type Sink[T any] interface {
	Save(batch []T) error
}

// Stats summarises a completed run.
type Stats struct {
	Pages   int
	Skipped int
	Records int
}

// Engine drives the pipeline: one page at a time, then a single write.
type Engine[T any] struct {
	processor Processor[T]
	sink      Sink[T]
	diag      *log.Logger
}

func NewEngine[T any](proc Processor[T], sink Sink[T]) *Engine[T] {
	return &Engine[T]{
		processor: proc,
		sink:      sink,
		diag:      log.New(os.Stderr, "", 0),
	}
}

// SetDiagnostics replaces the logger that receives skipped-page messages.
func (engine *Engine[T]) SetDiagnostics(l *log.Logger) {
	engine.diag = l
}

// Run processes every page in order and hands all records to the sink once
// the last page is done. A skipped page is reported and left out. Any other
// error stops the run before anything is saved.
func (engine *Engine[T]) Run(ctx context.Context, pages iter.Seq[int]) (Stats, error) {
	var stats Stats
	var records []T

	for page := range pages {
		stats.Pages++

		data, err := engine.processor.Process(ctx, page)
		if crawler.IsSkip(err) {
			stats.Skipped++
			engine.diag.Printf("Page %d could not be accessed.", page)
			continue
		}
		if err != nil {
			return stats, err
		}

		records = append(records, data...)
	}

	if err := engine.sink.Save(records); err != nil {
		return stats, fmt.Errorf("save %d records: %w", len(records), err)
	}
	stats.Records = len(records)
	return stats, nil
}
