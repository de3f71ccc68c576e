package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Demo modes accepted by DEMO_MODE.
const (
	DemoAuto = "auto"
	DemoOn   = "on"
	DemoOff  = "off"
)

// DefaultPath is the YAML file read when CONFIG_FILE is unset.
const DefaultPath = "config.yaml"

// Config holds all configuration for the pulse service.
type Config struct {
	HTTPPort         int
	Environment      string
	LogLevel         string
	LogFormat        string
	ModelPath        string
	DemoMode         string
	RateLimit        int
	MetricsEnabled   bool
	OTLPEndpoint     string
	TraceSampleRatio float64
}

type configFile struct {
	Service struct {
		HTTPPort    *int   `yaml:"http_port"`
		Environment string `yaml:"environment"`
	} `yaml:"service"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Model struct {
		Path     string `yaml:"path"`
		DemoMode string `yaml:"demo_mode"`
	} `yaml:"model"`
	HTTP struct {
		RateLimit *int `yaml:"rate_limit"`
	} `yaml:"http"`
	Telemetry struct {
		MetricsEnabled   *bool    `yaml:"metrics_enabled"`
		OTLPEndpoint     string   `yaml:"otlp_endpoint"`
		TraceSampleRatio *float64 `yaml:"trace_sample_ratio"`
	} `yaml:"telemetry"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		HTTPPort:         5000,
		Environment:      "development",
		LogLevel:         "info",
		LogFormat:        "json",
		ModelPath:        "model/logreg.json",
		DemoMode:         DemoAuto,
		RateLimit:        20,
		MetricsEnabled:   true,
		TraceSampleRatio: 1,
	}
}

// Load builds the configuration from, in increasing precedence: defaults, the
// YAML file at path, a .env file in the working directory, and the process
// environment. Missing files are ignored.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Defaults()

	if raw, err := os.ReadFile(path); err == nil {
		if err := cfg.applyFile(raw); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg.HTTPPort = getEnvInt("HTTP_PORT", cfg.HTTPPort)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.ModelPath = getEnv("MODEL_PATH", cfg.ModelPath)
	cfg.DemoMode = strings.ToLower(getEnv("DEMO_MODE", cfg.DemoMode))
	cfg.RateLimit = getEnvInt("RATE_LIMIT", cfg.RateLimit)
	cfg.MetricsEnabled = getEnvBool("METRICS_ENABLED", cfg.MetricsEnabled)
	cfg.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.OTLPEndpoint)
	cfg.TraceSampleRatio = getEnvFloat("OTEL_TRACE_SAMPLE_RATIO", cfg.TraceSampleRatio)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyFile(raw []byte) error {
	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return err
	}
	if f.Service.HTTPPort != nil {
		c.HTTPPort = *f.Service.HTTPPort
	}
	if f.Service.Environment != "" {
		c.Environment = f.Service.Environment
	}
	if f.Logging.Level != "" {
		c.LogLevel = f.Logging.Level
	}
	if f.Logging.Format != "" {
		c.LogFormat = f.Logging.Format
	}
	if f.Model.Path != "" {
		c.ModelPath = f.Model.Path
	}
	if f.Model.DemoMode != "" {
		c.DemoMode = strings.ToLower(f.Model.DemoMode)
	}
	if f.HTTP.RateLimit != nil {
		c.RateLimit = *f.HTTP.RateLimit
	}
	if f.Telemetry.MetricsEnabled != nil {
		c.MetricsEnabled = *f.Telemetry.MetricsEnabled
	}
	if f.Telemetry.OTLPEndpoint != "" {
		c.OTLPEndpoint = f.Telemetry.OTLPEndpoint
	}
	if f.Telemetry.TraceSampleRatio != nil {
		c.TraceSampleRatio = *f.Telemetry.TraceSampleRatio
	}
	return nil
}

// Validate rejects values the service cannot start with.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	switch c.DemoMode {
	case DemoAuto, DemoOn, DemoOff:
	default:
		return fmt.Errorf("invalid DEMO_MODE %q: want auto, on or off", c.DemoMode)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("invalid RATE_LIMIT %d: must be positive", c.RateLimit)
	}
	if c.ModelPath == "" {
		return errors.New("MODEL_PATH is required")
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		return fmt.Errorf("invalid OTEL_TRACE_SAMPLE_RATIO %g: must be within [0, 1]", c.TraceSampleRatio)
	}
	return nil
}

// AllowDemo reports whether demonstration predictions may be served when no
// model artifact can be loaded.
func (c *Config) AllowDemo() bool {
	switch c.DemoMode {
	case DemoOn:
		return true
	case DemoOff:
		return false
	default:
		return c.IsDevelopment()
	}
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}
