package crawler

import (
	"context"
	"strings"

	"product-scraper/pkg/models"
)

// ProductProcessor implements engine.Processor for catalogue listing pages.
type ProductProcessor struct {
	Fetcher   *Fetcher
	Extractor *Extractor
}

// Process fetches a single page and extracts its products.
// Skip and fatal errors from the fetch are returned unchanged.
func (p *ProductProcessor) Process(ctx context.Context, page int) ([]models.Product, error) {
	// 1. Download the listing page
	body, err := p.Fetcher.Fetch(ctx, page)
	if err != nil {
		return nil, err
	}

	// 2. Pull the product cards out of it
	return p.Extractor.Extract(strings.NewReader(body))
}
