// Package config loads runtime configuration from the environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultAPIKey is the fallback shared secret. Override it in any real deployment.
const DefaultAPIKey = "secret-key"

// Config holds the knobs for the HTTP server.
type Config struct {
	Port            int           `mapstructure:"port"`
	APIKey          string        `mapstructure:"api_key"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// UsesDefaultAPIKey reports whether the insecure fallback secret is active.
func (c Config) UsesDefaultAPIKey() bool {
	return c.APIKey == DefaultAPIKey
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 3000)
	v.SetDefault("api_key", DefaultAPIKey)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from the environment (PORT, API_KEY, LOG_LEVEL,
// LOG_FORMAT, SHUTDOWN_TIMEOUT) and, when CONFIG_FILE is set, from that file.
func Load() (Config, error) {
	return LoadFrom(New())
}

// LoadFrom decodes and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (Config, error) {
	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", file)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return Config{}, errors.Errorf("invalid port %d", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return Config{}, errors.Wrap(err, "invalid log level")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return Config{}, errors.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return Config{}, errors.Errorf("invalid shutdown timeout %s", c.ShutdownTimeout)
	}

	return c, nil
}
