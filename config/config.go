package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath          = "."
	envPrefix            = "WOZ_"
	defaultTotalProducts = 500
	defaultPageSize      = 20
	defaultPromotedCount = 5
	defaultDebounce      = 350 * time.Millisecond
	defaultStoreURL      = "mem://"
	defaultQRSize        = 256
	defaultQRLevel       = "M"
	defaultBaseURL       = "https://woz.com.py"
	defaultCountry       = "Paraguay"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	Store *StoreConfig `json:"store" yaml:"store"`

	// QRCode configuration for product share links
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Export *ExportConfig `json:"export" yaml:"export"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CatalogConfig defines catalog generation and pagination settings
type CatalogConfig struct {
	// Number of synthetic products generated per session load
	TotalProducts int `json:"totalProducts" yaml:"totalProducts"`

	// Number of records realized per pagination step
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// Size of the leading promoted subset of the generated products
	PromotedCount int `json:"promotedCount" yaml:"promotedCount"`

	// Reuse a persisted catalog snapshot instead of regenerating it
	ReuseSnapshot bool `json:"reuseSnapshot" yaml:"reuseSnapshot"`

	// Seed of the pseudo-random source; 0 seeds from the clock
	Seed int64 `json:"seed" yaml:"seed"`

	// Delay applied to free-text query input before filtering
	Debounce time.Duration `json:"debounce" yaml:"debounce"`

	// Shipping country preselected for new sessions
	Country string `json:"country" yaml:"country"`
}

// StoreConfig defines the key-value store backing the collections
type StoreConfig struct {
	// Bucket URL: "mem://" for an ephemeral store, "file:///path" for a durable one
	URL string `json:"url" yaml:"url"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// ExportConfig defines where CSV exports are written
type ExportConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.TrimPrefix(k, envPrefix)
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: WOZ_CATALOG_PAGESIZE -> catalog.pageSize (not catalog.pagesize)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// Default returns a configuration with every default applied and no file loaded.
func Default() *Config {
	cfg := new(Config)
	cfg.Env.ServiceName = "woz"
	cfg.Env.Log.Level = "info"
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if c.Catalog == nil {
		c.Catalog = &CatalogConfig{}
	}
	if c.Catalog.TotalProducts <= 0 {
		c.Catalog.TotalProducts = defaultTotalProducts
	}
	if c.Catalog.PageSize <= 0 {
		c.Catalog.PageSize = defaultPageSize
	}
	if c.Catalog.PromotedCount <= 0 {
		c.Catalog.PromotedCount = defaultPromotedCount
	}
	if c.Catalog.Debounce <= 0 {
		c.Catalog.Debounce = defaultDebounce
	}
	if strings.TrimSpace(c.Catalog.Country) == "" {
		c.Catalog.Country = defaultCountry
	}

	if c.Store == nil {
		c.Store = &StoreConfig{}
	}
	if strings.TrimSpace(c.Store.URL) == "" {
		c.Store.URL = defaultStoreURL
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = defaultQRLevel
	}
	if c.QRCode.BaseURL == "" {
		c.QRCode.BaseURL = defaultBaseURL
	}

	if c.Export == nil {
		c.Export = &ExportConfig{Dir: defaultPath}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
