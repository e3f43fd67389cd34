package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// PageURLTemplate maps to PAGE_URL_TEMPLATE. It must contain a single %d for the page number.
	PageURLTemplate string `envconfig:"PAGE_URL_TEMPLATE" default:"https://www.scrapingcourse.com/ecommerce/page/%d/"`

	// FirstPage and LastPage bound the page range, both inclusive.
	FirstPage int `envconfig:"FIRST_PAGE" default:"1"`
	LastPage  int `envconfig:"LAST_PAGE" default:"12"`

	// OutputPath maps to OUTPUT_PATH.
	OutputPath string `envconfig:"OUTPUT_PATH" default:"products.csv"`

	// DatabaseURL maps to DB_URL. Optional: when empty, products are only written to OutputPath.
	DatabaseURL string `envconfig:"DB_URL"`
}

// Load reads the scraper settings from the environment, with an optional
// .env file in the working directory filling in unset variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			log.Printf("Warning: ignoring unreadable .env file: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.FirstPage < 1 {
		return fmt.Errorf("FIRST_PAGE must be at least 1, got %d", c.FirstPage)
	}
	if c.LastPage < c.FirstPage {
		return fmt.Errorf("LAST_PAGE (%d) must not be below FIRST_PAGE (%d)", c.LastPage, c.FirstPage)
	}
	if strings.Count(c.PageURLTemplate, "%d") != 1 || strings.Count(c.PageURLTemplate, "%") != 1 {
		return fmt.Errorf("PAGE_URL_TEMPLATE must contain exactly one %%d verb: %q", c.PageURLTemplate)
	}
	if c.OutputPath == "" {
		return errors.New("OUTPUT_PATH must not be empty")
	}
	return nil
}
