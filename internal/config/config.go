// Package config loads bedtimecalc settings from defaults, an optional YAML
// file, BEDTIME_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bedtimecalc/internal/bedtime"
	"bedtimecalc/internal/clock"
)

// EnvPrefix is prepended to every environment variable, e.g. BEDTIME_WAKE.
const EnvPrefix = "BEDTIME"

// Config holds the raw settings.
type Config struct {
	Wake    string  `mapstructure:"wake"`
	Sleep   float64 `mapstructure:"sleep"`
	Coffee  int     `mapstructure:"coffee"`
	Format  string  `mapstructure:"format"`
	Model   string  `mapstructure:"model"`
	Port    int     `mapstructure:"port"`
	Verbose bool    `mapstructure:"verbose"`
}

// Settings are the validated values the rest of the program uses.
type Settings struct {
	Defaults bedtime.Defaults
	Style    clock.Style
	Model    string
	Port     int
	Verbose  bool
}

// DefaultPath returns the config file looked up when none is given.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "bedtimecalc", "config.yaml")
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("wake", bedtime.DefaultWake.String())
	v.SetDefault("sleep", bedtime.DefaultSleepHours)
	v.SetDefault("coffee", bedtime.DefaultCaffeineCups)
	v.SetDefault("format", string(clock.Style24h))
	v.SetDefault("model", "")
	v.SetDefault("port", 0)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration into v. An explicit path must exist; without
// one, the file at DefaultPath is used when present. Flags in fs that were
// set on the command line override everything else.
func Load(v *viper.Viper, path string, fs *pflag.FlagSet) (*Config, error) {
	if fs != nil {
		for _, name := range []string{"wake", "sleep", "coffee", "format", "model", "port", "verbose"} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if def := DefaultPath(); fileExists(def) {
		v.SetConfigFile(def)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", def, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Settings validates cfg. Sleep and coffee outside their ranges are
// clamped rather than rejected; a bad wake time or format is an error.
func (c *Config) Settings() (*Settings, error) {
	wake, err := clock.Parse(c.Wake)
	if err != nil {
		return nil, fmt.Errorf("invalid wake: %w", err)
	}
	style, err := clock.ParseStyle(c.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid format: %w", err)
	}
	if c.Port < 0 || c.Port > 65535 {
		return nil, errors.New("port must be between 0 and 65535")
	}
	return &Settings{
		Defaults: bedtime.Defaults{
			Wake:         wake,
			SleepHours:   bedtime.ClampSleep(c.Sleep),
			CaffeineCups: bedtime.ClampCaffeine(c.Coffee),
		},
		Style:   style,
		Model:   c.Model,
		Port:    c.Port,
		Verbose: c.Verbose,
	}, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
