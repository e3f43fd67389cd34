package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"product-scraper/internal/config"
	"product-scraper/internal/crawler"
	"product-scraper/internal/crawler/engine"
	"product-scraper/internal/storage"
	"product-scraper/pkg/models"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scraper",
		Short: "Scrape the product catalogue into a CSV file",
		Long: `scraper downloads every listing page of the catalogue, extracts the
url, image, name and price of each product and writes them to a CSV file.

Configuration is read from the environment (or a .env file):
  PAGE_URL_TEMPLATE, FIRST_PAGE, LAST_PAGE, OUTPUT_PATH, DB_URL`,
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, closeSink, err := buildSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	processor := &crawler.ProductProcessor{
		Fetcher:   crawler.NewFetcher(cfg.PageURLTemplate),
		Extractor: crawler.NewExtractor(),
	}

	_, err = engine.NewEngine[models.Product](processor, sink).Run(ctx, crawler.PageRange(cfg.FirstPage, cfg.LastPage))
	return err
}

// buildSink always writes the CSV file and also writes to Postgres when DB_URL is set.
// The CSV file goes last so a failed database save leaves no output file behind.
func buildSink(ctx context.Context, cfg *config.Config) (storage.Sink, func(), error) {
	csvSink := storage.NewCSVSink(cfg.OutputPath)
	if cfg.DatabaseURL == "" {
		return csvSink, func() {}, nil
	}

	db, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	productSink := storage.NewProductSink(db)
	if err := productSink.EnsureSchema(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return storage.MultiSink{productSink, csvSink}, func() { db.Close() }, nil
}
