package storage

import "product-scraper/pkg/models"

type Sink interface {
	Save(batch []models.Product) error
}

// MultiSink saves the same batch to each sink in turn, stopping at the first error.
// Put file sinks last: a sink after a failed one is never written.
type MultiSink []Sink

func (m MultiSink) Save(batch []models.Product) error {
	for _, s := range m {
		if err := s.Save(batch); err != nil {
			return err
		}
	}
	return nil
}
