package utils

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceLocal = "local"
	CatalogSourceTable = "table"
)

type Config struct {
	Host string
	Port int

	BaseDir          string
	EnglishDir       string
	HindiLinksFile   string
	EnglishLinksFile string

	// CatalogSource selects how the landing page list is built: "local" scans
	// EnglishDir, "table" reads EnglishLinksFile.
	CatalogSource string

	LogLevel  string
	LogFormat string
	GinMode   string
}

// Addr returns the listen address for http.Server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LoadConfig reads configuration from the environment, after applying an
// optional .env file in the working directory.
func LoadConfig() (*Config, error) {
	// .env is optional; a missing file is fine
	_ = godotenv.Load()

	base := envOr("REPORTS_BASE_DIR", "reports")

	port, err := envInt("REPORTS_PORT", 5000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:             envOr("REPORTS_HOST", "0.0.0.0"),
		Port:             port,
		BaseDir:          base,
		EnglishDir:       envOr("REPORTS_ENGLISH_DIR", filepath.Join(base, "JRM_ENGLISH")),
		HindiLinksFile:   envOr("REPORTS_HINDI_LINKS", filepath.Join(base, "gdrive_links.json")),
		EnglishLinksFile: envOr("REPORTS_ENGLISH_LINKS", filepath.Join(base, "english_links.json")),
		CatalogSource:    strings.ToLower(envOr("REPORTS_CATALOG_SOURCE", CatalogSourceTable)),
		LogLevel:         envOr("LOG_LEVEL", "info"),
		LogFormat:        envOr("LOG_FORMAT", "json"),
		GinMode:          envOr("GIN_MODE", "release"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.CatalogSource {
	case CatalogSourceLocal, CatalogSourceTable:
	default:
		return fmt.Errorf("REPORTS_CATALOG_SOURCE must be %q or %q, got %q",
			CatalogSourceLocal, CatalogSourceTable, c.CatalogSource)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("REPORTS_PORT out of range: %d", c.Port)
	}
	if strings.TrimSpace(c.EnglishDir) == "" {
		return fmt.Errorf("REPORTS_ENGLISH_DIR is empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
