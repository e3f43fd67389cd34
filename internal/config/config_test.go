package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // keep a developer's .env out of the test

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://www.scrapingcourse.com/ecommerce/page/%d/", cfg.PageURLTemplate)
	require.Equal(t, 1, cfg.FirstPage)
	require.Equal(t, 12, cfg.LastPage)
	require.Equal(t, "products.csv", cfg.OutputPath)
	require.Empty(t, cfg.DatabaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAGE_URL_TEMPLATE", "http://localhost:8080/page/%d/")
	t.Setenv("LAST_PAGE", "3")
	t.Setenv("OUTPUT_PATH", "out.csv")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/page/%d/", cfg.PageURLTemplate)
	require.Equal(t, 3, cfg.LastPage)
	require.Equal(t, "out.csv", cfg.OutputPath)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			PageURLTemplate: "https://example.com/page/%d/",
			FirstPage:       1,
			LastPage:        12,
			OutputPath:      "products.csv",
		}
	}

	cases := map[string]func(c *Config){
		"first page zero":       func(c *Config) { c.FirstPage = 0 },
		"inverted range":        func(c *Config) { c.FirstPage, c.LastPage = 5, 4 },
		"template without verb": func(c *Config) { c.PageURLTemplate = "https://example.com/page/" },
		"template with two":     func(c *Config) { c.PageURLTemplate = "https://example.com/%d/%d/" },
		"template with %s":      func(c *Config) { c.PageURLTemplate = "https://example.com/%s/%d/" },
		"empty output":          func(c *Config) { c.OutputPath = "" },
	}

	base := valid()
	require.NoError(t, base.Validate())

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LAST_PAGE=2\nOUTPUT_PATH=from-dotenv.csv\n"), 0o644))
	t.Setenv("OUTPUT_PATH", "from-env.csv")
	// godotenv only fills unset variables; t.Setenv restores LAST_PAGE afterwards.
	t.Setenv("LAST_PAGE", "")
	require.NoError(t, os.Unsetenv("LAST_PAGE"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2, cfg.LastPage)
	require.Equal(t, "from-env.csv", cfg.OutputPath, "real environment wins over .env")
}

func TestLoad_RejectsInvalidRange(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FIRST_PAGE", "5")
	t.Setenv("LAST_PAGE", "4")

	_, err := Load()
	require.Error(t, err)
}
