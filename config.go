/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settingstore

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/suparena/settingstore/errors"
)

// EnvPrefix prefixes every environment variable read by ReadConfig.
const EnvPrefix = "SETTINGSTORE"

// Config selects and configures the asset store backing the setting registries.
type Config struct {
	// Backend names a registered backend: "file", "dynamodb" or "memory".
	Backend string `mapstructure:"backend" yaml:"backend"`
	// ResourceRoot is the resource directory read by the file backend.
	ResourceRoot string     `mapstructure:"resource_root" yaml:"resource_root"`
	AWS          AWSConfig  `mapstructure:"aws" yaml:"aws"`
	Load         LoadConfig `mapstructure:"load" yaml:"load"`
	Log          LogConfig  `mapstructure:"log" yaml:"log"`
}

// AWSConfig configures the dynamodb backend.
type AWSConfig struct {
	Region    string `mapstructure:"region" yaml:"region"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"`
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint"`
	Table     string `mapstructure:"table" yaml:"table"`
}

// LoadConfig tunes remote loads.
type LoadConfig struct {
	PageSize       int32         `mapstructure:"page_size" yaml:"page_size"`
	MaxRetries     int           `mapstructure:"max_retries" yaml:"max_retries"`
	RetryBackoff   time.Duration `mapstructure:"retry_backoff" yaml:"retry_backoff"`
	ConsistentRead bool          `mapstructure:"consistent_read" yaml:"consistent_read"`
}

// LogConfig selects the log level ("debug", "info", "warn", "error") and
// format ("text", "json").
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Backend:      "file",
		ResourceRoot: "Resources",
		Load: LoadConfig{
			PageSize:     100,
			MaxRetries:   3,
			RetryBackoff: 200 * time.Millisecond,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// ReadConfig builds a Config from defaults, an optional YAML file and the
// environment. envFiles are loaded into the environment first; missing ones
// are ignored. Variables are named SETTINGSTORE_<KEY>, e.g.
// SETTINGSTORE_AWS_TABLE, and the dynamodb credentials also fall back to the
// standard AWS_* variables.
func ReadConfig(configFile string, envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("aws.region", EnvPrefix+"_AWS_REGION", "AWS_REGION")
	_ = v.BindEnv("aws.access_key", EnvPrefix+"_AWS_ACCESS_KEY", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("aws.secret_key", EnvPrefix+"_AWS_SECRET_KEY", "AWS_SECRET_ACCESS_KEY")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("backend", d.Backend)
	v.SetDefault("resource_root", d.ResourceRoot)
	v.SetDefault("aws.region", d.AWS.Region)
	v.SetDefault("aws.access_key", d.AWS.AccessKey)
	v.SetDefault("aws.secret_key", d.AWS.SecretKey)
	v.SetDefault("aws.endpoint", d.AWS.Endpoint)
	v.SetDefault("aws.table", d.AWS.Table)
	v.SetDefault("load.page_size", d.Load.PageSize)
	v.SetDefault("load.max_retries", d.Load.MaxRetries)
	v.SetDefault("load.retry_backoff", d.Load.RetryBackoff)
	v.SetDefault("load.consistent_read", d.Load.ConsistentRead)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks the fields every backend relies on. Backend specific
// requirements are checked when the backend is opened.
func (c Config) Validate() error {
	if c.Backend == "" {
		return errors.NewValidationError("backend", "must not be empty")
	}
	if c.Load.PageSize < 0 {
		return errors.NewValidationError("load.page_size", "must not be negative")
	}
	if c.Load.MaxRetries < 0 {
		return errors.NewValidationError("load.max_retries", "must not be negative")
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errors.NewValidationError("log.level", fmt.Sprintf("unknown level %q", c.Log.Level))
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return errors.NewValidationError("log.format", fmt.Sprintf("unknown format %q", c.Log.Format))
	}
	return nil
}
