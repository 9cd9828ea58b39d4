package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"REPORTS_HOST", "REPORTS_PORT", "REPORTS_BASE_DIR", "REPORTS_ENGLISH_DIR",
		"REPORTS_HINDI_LINKS", "REPORTS_ENGLISH_LINKS", "REPORTS_CATALOG_SOURCE",
		"LOG_LEVEL", "LOG_FORMAT", "GIN_MODE",
	} {
		t.Setenv(k, "")
	}
	// keep a stray .env in the package dir out of the picture
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, filepath.Join("reports", "JRM_ENGLISH"), cfg.EnglishDir)
	assert.Equal(t, filepath.Join("reports", "gdrive_links.json"), cfg.HindiLinksFile)
	assert.Equal(t, filepath.Join("reports", "english_links.json"), cfg.EnglishLinksFile)
	assert.Equal(t, CatalogSourceTable, cfg.CatalogSource)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REPORTS_BASE_DIR", "/srv/r")
	t.Setenv("REPORTS_PORT", "8081")
	t.Setenv("REPORTS_CATALOG_SOURCE", "LOCAL")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, filepath.Join("/srv/r", "JRM_ENGLISH"), cfg.EnglishDir)
	assert.Equal(t, CatalogSourceLocal, cfg.CatalogSource)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad source", key: "REPORTS_CATALOG_SOURCE", val: "s3"},
		{name: "bad port", key: "REPORTS_PORT", val: "abc"},
		{name: "port range", key: "REPORTS_PORT", val: "70000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
