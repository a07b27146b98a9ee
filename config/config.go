package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"prepmap/internal/mapcore/projection"
	"prepmap/internal/mapcore/viewport"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMapWidth           = 625
	defaultMapHeight          = 910
	defaultLabelFontSize      = 12
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis configuration for the facility cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	// QRCode configuration for facility contact QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Map configuration for the geometry source, projection and overlay
	Map *MapConfig `json:"map" yaml:"map"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SecretKeyConfig defines the signing key for admin access tokens
type SecretKeyConfig struct {
	Access string        `json:"access" yaml:"access"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

// RedisConfig defines the facility cache connection
type RedisConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MapConfig defines where the map comes from and how it is drawn
type MapConfig struct {
	Geometry struct {
		// BucketURL is a gocloud.dev blob URL, e.g. file:///srv/map or gs://bucket
		BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
		Key       string `json:"key" yaml:"key"`
	} `json:"geometry" yaml:"geometry"`

	// RegionsFile is the identity table, resolved like the config file itself
	RegionsFile string `json:"regionsFile" yaml:"regionsFile"`

	Width  float64              `json:"width" yaml:"width"`
	Height float64              `json:"height" yaml:"height"`
	Bounds projection.GeoBounds `json:"bounds" yaml:"bounds"`

	Labels struct {
		// Width 0 sizes labels from the widest facility name
		Width    float64 `json:"width" yaml:"width"`
		Height   float64 `json:"height" yaml:"height"`
		FontSize float64 `json:"fontSize" yaml:"fontSize"`
		Offset   float64 `json:"offset" yaml:"offset"`
	} `json:"labels" yaml:"labels"`

	Viewport viewport.Config `json:"viewport" yaml:"viewport"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findFile(currEnv+".yaml", configPath...)
	if err != nil {
		return nil, err
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: MAP_VIEWPORT_FRAMEINTERVAL -> map.viewport.frameInterval
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := unmarshal(koanfInstance, cfg); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// LoadFile reads a standalone YAML document such as the region identity table,
// without environment overrides.
func LoadFile[T any](name string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	path := name
	if !filepath.IsAbs(name) {
		found, err := findFile(name, configPath...)
		if err != nil {
			return nil, err
		}
		path = found
	}

	if err := koanfInstance.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}
	if err := unmarshal(koanfInstance, cfg); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s failed", path)
	}

	return cfg, nil
}

func findFile(name string, configPath ...string) (string, error) {
	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", name)
}

func unmarshal(koanfInstance *koanf.Koanf, out any) error {
	// Unmarshal into the config struct (case-insensitive to match env vars)
	return koanfInstance.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	})
}

var searchPaths = []string{"config", "../config", "../../config"}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", searchPaths...)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if cfg.Map == nil {
		return nil, errors.New("map configuration is required")
	}
	applyMapDefaults(cfg.Map)

	return cfg, nil
}

// RegionsPath resolves the identity table file against the config search paths.
func (c *Config) RegionsPath() (string, error) {
	if filepath.IsAbs(c.Map.RegionsFile) {
		return c.Map.RegionsFile, nil
	}

	return findFile(c.Map.RegionsFile, searchPaths...)
}

func applyMapDefaults(m *MapConfig) {
	if m.Width <= 0 {
		m.Width = defaultMapWidth
	}
	if m.Height <= 0 {
		m.Height = defaultMapHeight
	}
	if m.Labels.FontSize <= 0 {
		m.Labels.FontSize = defaultLabelFontSize
	}
	if m.RegionsFile == "" {
		m.RegionsFile = "regions.yaml"
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
