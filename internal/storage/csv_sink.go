package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"product-scraper/pkg/models"
)

// createFile opens the output file; replaced in tests.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// CSVSink implements engine.Sink by writing every product to one CSV file.
type CSVSink struct {
	Path string
}

func NewCSVSink(path string) *CSVSink {
	return &CSVSink{Path: path}
}

// Save truncates Path and writes the header followed by one row per product.
// On any failure the half-written file is removed.
func (s *CSVSink) Save(batch []models.Product) (err error) {
	file, err := createFile(s.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.Path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.Path, cerr)
		}
		if err != nil {
			os.Remove(s.Path)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(models.ProductColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range batch {
		if err := writer.Write(p.Row()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", s.Path, err)
	}
	return nil
}
