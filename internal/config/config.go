// Package config loads transpyle settings from defaults, an optional YAML
// file, TRANSPYLE_ environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// Defaults.
const (
	DefaultConfigName = ".transpyle"
	DefaultReports    = ".transpyle-reports"
	DefaultCacheSize  = 128
	EnvPrefix         = "TRANSPYLE"
)

// LogConfig defines the logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Config is the top-level configuration struct.
type Config struct {
	Targets   []string  `mapstructure:"targets"`
	Reports   string    `mapstructure:"reports"`
	Parallel  int       `mapstructure:"parallel"`
	Include   []string  `mapstructure:"include"`
	Exclude   []string  `mapstructure:"exclude"`
	CacheSize int       `mapstructure:"cache_size"`
	Strict    bool      `mapstructure:"strict"`
	UI        string    `mapstructure:"ui"`
	Log       LogConfig `mapstructure:"log"`
}

// flagKeys maps configuration keys to the flag names that override them.
var flagKeys = map[string]string{
	"targets":    "targets",
	"reports":    "reports",
	"parallel":   "parallel",
	"include":    "include",
	"exclude":    "exclude",
	"cache_size": "cache-size",
	"strict":     "strict",
	"ui":         "ui",
	"log.level":  "log-level",
	"log.format": "log-format",
	"log.output": "log-output",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("targets", []string{})
	v.SetDefault("reports", DefaultReports)
	v.SetDefault("parallel", 1)
	v.SetDefault("include", []string{"**.py"})
	v.SetDefault("exclude", []string{})
	v.SetDefault("cache_size", DefaultCacheSize)
	v.SetDefault("strict", false)
	v.SetDefault("ui", "auto")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")
}

// Load reads the configuration. An empty path searches the working directory
// for .transpyle.yaml and tolerates its absence; an explicit path must exist.
// Only flags of flags that were set on the command line override the file.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil || !flag.Changed {
				continue
			}

			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
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

// Validate checks value ranges and target names.
func (c Config) Validate() error {
	if c.Parallel < 0 {
		return fmt.Errorf("invalid config: parallel must not be negative, got %d", c.Parallel)
	}

	if c.CacheSize < 0 {
		return fmt.Errorf("invalid config: cache_size must not be negative, got %d", c.CacheSize)
	}

	if _, err := c.TargetIDs(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// TargetIDs parses the configured target names, dropping duplicates. An
// empty list means every target.
func (c Config) TargetIDs() ([]m.Target, error) {
	ids := make([]m.Target, 0, len(c.Targets))
	seen := make(map[m.Target]bool, len(c.Targets))

	for _, name := range c.Targets {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}

			id, err := m.ParseTarget(part)
			if err != nil {
				return nil, err
			}

			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	return ids, nil
}
