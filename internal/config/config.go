// Package config loads bottleneck settings from flags, environment variables
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/restartfu/bottleneck/internal/bottleneck"
	"github.com/restartfu/bottleneck/internal/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BOTTLENECK"

type Config struct {
	HTTP       HTTPConfig       `mapstructure:"http"`
	Log        LogConfig        `mapstructure:"log"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
	Sentry     SentryConfig     `mapstructure:"sentry"`
}

type HTTPConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json, console
}

type CalculatorConfig struct {
	// TieBreak is the limiting side reported for equal scores: gpu or balanced.
	TieBreak string `mapstructure:"tie_break"`
}

type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
	Release     string `mapstructure:"release"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatJSON,
		},
		Calculator: CalculatorConfig{
			TieBreak: string(bottleneck.TieBreakGPU),
		},
	}
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"addr":       "http.addr",
	"log-level":  "log.level",
	"log-format": "log.format",
	"tie-break":  "calculator.tie_break",
}

// Load resolves configuration. Flags that were set explicitly win over
// environment variables, which win over the config file and defaults. An
// empty configPath searches for bottleneck.yaml in the working directory and
// $HOME/.config/bottleneck; a missing file is not an error.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("bottleneck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bottleneck")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("http.addr", cfg.HTTP.Addr)
	v.SetDefault("http.read_header_timeout", cfg.HTTP.ReadHeaderTimeout)
	v.SetDefault("http.shutdown_timeout", cfg.HTTP.ShutdownTimeout)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("calculator.tie_break", cfg.Calculator.TieBreak)
	v.SetDefault("sentry.dsn", cfg.Sentry.DSN)
	v.SetDefault("sentry.environment", cfg.Sentry.Environment)
	v.SetDefault("sentry.release", cfg.Sentry.Release)
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("http.addr", envPrefix+"_ADDR")
	_ = v.BindEnv("http.read_header_timeout", envPrefix+"_READ_HEADER_TIMEOUT")
	_ = v.BindEnv("http.shutdown_timeout", envPrefix+"_SHUTDOWN_TIMEOUT")
	_ = v.BindEnv("log.level", envPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("log.format", envPrefix+"_LOG_FORMAT")
	_ = v.BindEnv("calculator.tie_break", envPrefix+"_TIE_BREAK")
	_ = v.BindEnv("sentry.dsn", envPrefix+"_SENTRY_DSN", "SENTRY_DSN")
	_ = v.BindEnv("sentry.environment", envPrefix+"_SENTRY_ENVIRONMENT", "SENTRY_ENVIRONMENT")
	_ = v.BindEnv("sentry.release", envPrefix+"_SENTRY_RELEASE", "SENTRY_RELEASE")
}

func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr must not be empty")
	}
	if c.HTTP.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("http.read_header_timeout must be positive, got %s", c.HTTP.ReadHeaderTimeout)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("http.shutdown_timeout must be positive, got %s", c.HTTP.ShutdownTimeout)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if _, err := bottleneck.ParseTieBreak(c.Calculator.TieBreak); err != nil {
		return err
	}
	return nil
}

// TieBreak returns the validated tie-break mode.
func (c *Config) TieBreak() bottleneck.TieBreak {
	mode, err := bottleneck.ParseTieBreak(c.Calculator.TieBreak)
	if err != nil {
		return bottleneck.TieBreakGPU
	}
	return mode
}
