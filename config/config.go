package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

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
	defaultMaxRequestBodySize = "8MB"
	defaultTimeZone           = "Asia/Seoul"

	defaultReceiptTimeout   = 10 * time.Second
	defaultReceiptRateLimit = 5
	defaultPlaceTimeout     = 3 * time.Second
	defaultListLimit        = 50
	defaultMaxListLimit     = 200
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
		// TimeZone is the IANA zone seasons are evaluated in.
		TimeZone string `json:"timeZone" yaml:"timeZone"`
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

	// Receipt configures the external receipt recognition service
	Receipt *ReceiptConfig `json:"receipt" yaml:"receipt"`

	// PlaceSearch configures the optional store lookup used to enrich new stores
	PlaceSearch *PlaceSearchConfig `json:"placeSearch" yaml:"placeSearch"`

	// Review holds admission and listing tunables
	Review *ReviewConfig `json:"review" yaml:"review"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ReceiptConfig defines the receipt OCR client configuration
type ReceiptConfig struct {
	// Invoke URL of the receipt recognition API
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Secret sent in the X-OCR-SECRET header
	Secret string `json:"secret" yaml:"secret"`

	// Upper bound for a single recognition call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Requests per second allowed towards the recognition API
	RateLimit int `json:"rateLimit" yaml:"rateLimit"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig defines circuit breaker thresholds for an outbound client
type BreakerConfig struct {
	MaxRequests  uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval     time.Duration `json:"interval" yaml:"interval"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	FailureRatio float64       `json:"failureRatio" yaml:"failureRatio"`
	MinRequests  uint32        `json:"minRequests" yaml:"minRequests"`
}

// PlaceSearchConfig defines the Kakao local search client configuration
type PlaceSearchConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	RestKey  string        `json:"restKey" yaml:"restKey"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// ReviewConfig defines review admission and listing configuration
type ReviewConfig struct {
	DefaultListLimit int `json:"defaultListLimit" yaml:"defaultListLimit"`
	MaxListLimit     int `json:"maxListLimit" yaml:"maxListLimit"`

	// Retries for a transaction aborted by serialization failure or deadlock
	TxRetries int `json:"txRetries" yaml:"txRetries"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the metrics endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// RECEIPT_TIMEOUT -> receipt.timeout, aligned with the YAML key casing.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills optional sections so consumers never see nil pointers.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(cfg.Env.TimeZone) == "" {
		cfg.Env.TimeZone = defaultTimeZone
	}

	if cfg.Receipt == nil {
		cfg.Receipt = &ReceiptConfig{}
	}
	if cfg.Receipt.Timeout <= 0 {
		cfg.Receipt.Timeout = defaultReceiptTimeout
	}
	if cfg.Receipt.RateLimit <= 0 {
		cfg.Receipt.RateLimit = defaultReceiptRateLimit
	}

	if cfg.PlaceSearch == nil {
		cfg.PlaceSearch = &PlaceSearchConfig{}
	}
	if cfg.PlaceSearch.Timeout <= 0 {
		cfg.PlaceSearch.Timeout = defaultPlaceTimeout
	}

	if cfg.Review == nil {
		cfg.Review = &ReviewConfig{}
	}
	if cfg.Review.DefaultListLimit <= 0 {
		cfg.Review.DefaultListLimit = defaultListLimit
	}
	if cfg.Review.MaxListLimit <= 0 {
		cfg.Review.MaxListLimit = defaultMaxListLimit
	}
	if cfg.Review.TxRetries < 0 {
		cfg.Review.TxRetries = 0
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

// Location resolves the configured service time zone.
func (cfg *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Env.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "load time zone %q", cfg.Env.TimeZone)
	}

	return loc, nil
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
