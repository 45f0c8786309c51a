// Package config loads CLI settings from flags, environment and an optional
// config file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc"
)

// EnvPrefix prefixes environment overrides, e.g. TABLECALC_CYCLE_CHECK.
const EnvPrefix = "TABLECALC"

// Output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Config holds the resolved CLI settings. Keys match the flag names.
type Config struct {
	Output     string `mapstructure:"output"`
	Format     string `mapstructure:"format"`
	Pretty     bool   `mapstructure:"pretty"`
	Sheet      string `mapstructure:"sheet"`
	CycleCheck string `mapstructure:"cycle-check"`
	Strict     bool   `mapstructure:"strict"`
	LogLevel   string `mapstructure:"log-level"`
}

// Validate checks that every enumerated setting has a known value.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatCSV, FormatJSON:
	case FormatXLSX:
		if c.Output == "" {
			return fmt.Errorf("format %s requires an output file", FormatXLSX)
		}
	default:
		return fmt.Errorf("invalid format: %s (must be csv, json, or xlsx)", c.Format)
	}

	if _, err := tablecalc.ParseCycleCheck(c.CycleCheck); err != nil {
		return err
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return level, nil
}

// Options converts the settings to evaluation options.
func (c *Config) Options() tablecalc.Options {
	opts := tablecalc.DefaultOptions()
	opts.CycleCheck = tablecalc.CycleCheck(c.CycleCheck)
	opts.StrictFormulas = c.Strict
	opts.Sheet = c.Sheet
	return opts
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "")
	v.SetDefault("format", FormatCSV)
	v.SetDefault("pretty", false)
	v.SetDefault("sheet", "")
	v.SetDefault("cycle-check", string(tablecalc.CycleCheckRevisit))
	v.SetDefault("strict", false)
	v.SetDefault("log-level", "warn")
}

// Load merges defaults, the config file at path (if any), TABLECALC_*
// environment variables and the flags that were set, in increasing order of
// precedence.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
