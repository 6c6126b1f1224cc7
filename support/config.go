package support

import (
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddress  = ":9080"
	DefaultLogLevel = "info"

	ExporterNone      = "none"
	ExporterConsole   = "console"
	ExporterHoneycomb = "honeycomb"
	ExporterJaeger    = "jaeger"
)

type Config struct {
	Address  string        `yaml:"address"`
	LogLevel string        `yaml:"log_level"`
	Tracing  TracingConfig `yaml:"tracing"`
}

type TracingConfig struct {
	Exporter         string `yaml:"exporter"`
	JaegerEndpoint   string `yaml:"jaeger_endpoint"`
	HoneycombTeam    string `yaml:"honeycomb_team"`
	HoneycombDataset string `yaml:"honeycomb_dataset"`
}

// Load reads the YAML file at path, if one is given, then applies
// environment overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		contents, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config")
		}

		if err := yaml.Unmarshal(contents, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config")
		}
	}

	override(&cfg.Address, "WEE_ADDRESS")
	override(&cfg.LogLevel, "WEE_LOG_LEVEL")
	override(&cfg.Tracing.Exporter, "WEE_TRACING_EXPORTER")
	override(&cfg.Tracing.JaegerEndpoint, "WEE_JAEGER_ENDPOINT")
	override(&cfg.Tracing.HoneycombTeam, "HONEYCOMB_TEAM")
	override(&cfg.Tracing.HoneycombDataset, "HONEYCOMB_DATASET")

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func override(field *string, variable string) {
	if value, ok := os.LookupEnv(variable); ok && value != "" {
		*field = value
	}
}

// Validate fills in defaults and checks the settings hang together.
func Validate(cfg *Config) error {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if _, _, err := net.SplitHostPort(cfg.Address); err != nil {
		return errors.Wrapf(err, "invalid address %q", cfg.Address)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	if cfg.Tracing.Exporter == "" {
		cfg.Tracing.Exporter = ExporterNone
	}

	switch cfg.Tracing.Exporter {
	case ExporterNone, ExporterConsole, ExporterJaeger:
	case ExporterHoneycomb:
		if cfg.Tracing.HoneycombTeam == "" || cfg.Tracing.HoneycombDataset == "" {
			return errors.New("honeycomb tracing requires HONEYCOMB_TEAM and HONEYCOMB_DATASET")
		}
	default:
		return errors.Errorf("unknown tracing exporter %q", cfg.Tracing.Exporter)
	}

	return nil
}

// Logger builds the process logger at the configured level.
func (cfg *Config) Logger() *zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	return &logger
}
