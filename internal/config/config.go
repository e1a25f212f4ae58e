package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Roads    RoadsConfig    `yaml:"roads" mapstructure:"roads"`
	Bridges  BridgesConfig  `yaml:"bridges" mapstructure:"bridges"`
	Segments SegmentsConfig `yaml:"segments" mapstructure:"segments"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// RoadsConfig configures road cleaning.
type RoadsConfig struct {
	OutlierKM       float64 `yaml:"outlier_km" mapstructure:"outlier_km"`
	Window          int     `yaml:"window" mapstructure:"window"`
	FillGaps        bool    `yaml:"fill_gaps" mapstructure:"fill_gaps"`
	Workers         int     `yaml:"workers" mapstructure:"workers"`
	InsertGapColumn bool    `yaml:"insert_gap_column" mapstructure:"insert_gap_column"`
}

// BridgesConfig configures bridge input and output.
type BridgesConfig struct {
	Sheet string `yaml:"sheet" mapstructure:"sheet"`
}

// SegmentsConfig configures segment extraction.
type SegmentsConfig struct {
	StartID int `yaml:"start_id" mapstructure:"start_id"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("roadfix")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ROADFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("roads.outlier_km", 10.0)
	v.SetDefault("roads.window", 5)
	v.SetDefault("roads.fill_gaps", true)
	v.SetDefault("roads.workers", 1)
	v.SetDefault("roads.insert_gap_column", true)
	v.SetDefault("bridges.sheet", "BMMS_overview")
	v.SetDefault("segments.start_id", 1000001)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks value ranges and reports every violation at once.
func (c *Config) Validate() error {
	var errs []string
	if c.Roads.OutlierKM <= 0 {
		errs = append(errs, "roads.outlier_km must be > 0")
	}
	if c.Roads.Window < 1 {
		errs = append(errs, "roads.window must be >= 1")
	}
	if c.Roads.Workers < 1 || c.Roads.Workers > 64 {
		errs = append(errs, "roads.workers must be between 1 and 64")
	}
	if strings.TrimSpace(c.Bridges.Sheet) == "" {
		errs = append(errs, "bridges.sheet is required")
	}
	if c.Segments.StartID < 0 {
		errs = append(errs, "segments.start_id must be >= 0")
	}
	if len(errs) > 0 {
		return eris.Errorf("config: invalid: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
