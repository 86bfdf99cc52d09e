package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"catalog": map[string]any{
			"pageSize":      20,
			"reuseSnapshot": false,
		},
		"qrcode": map[string]any{
			"baseUrl":              "",
			"errorCorrectionLevel": "M",
		},
		"store": map[string]any{
			"url": "mem://",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "CATALOG_PAGESIZE", want: "catalog.pageSize"},
		{envKey: "CATALOG_REUSESNAPSHOT", want: "catalog.reuseSnapshot"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "STORE_URL", want: "store.url"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_FileAndEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	yaml := `env:
  serviceName: woz
  log:
    level: debug
catalog:
  totalProducts: 120
  pageSize: 10
  debounce: 200ms
store:
  url: mem://
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o644))
	t.Chdir(dir)
	t.Setenv("WOZ_CATALOG_PAGESIZE", "50")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "woz", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	require.NotNil(t, cfg.Catalog)
	assert.Equal(t, 120, cfg.Catalog.TotalProducts)
	assert.Equal(t, 50, cfg.Catalog.PageSize)
	assert.Equal(t, 200*time.Millisecond, cfg.Catalog.Debounce)
	assert.Equal(t, "mem://", cfg.Store.URL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 500, cfg.Catalog.TotalProducts)
	assert.Equal(t, 20, cfg.Catalog.PageSize)
	assert.Equal(t, 5, cfg.Catalog.PromotedCount)
	assert.Equal(t, 350*time.Millisecond, cfg.Catalog.Debounce)
	assert.Equal(t, "Paraguay", cfg.Catalog.Country)
	assert.Equal(t, "mem://", cfg.Store.URL)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.NotEmpty(t, cfg.QRCode.BaseURL)
}
