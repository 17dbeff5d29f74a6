package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "ANALYZER"

	DefaultHands = 6
	MinHands     = 1
	// MaxHands is the largest table a single deck can deal five cards to.
	MaxHands = 10

	StylePlain  = "plain"
	StylePretty = "pretty"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// File is the optional hand file. Empty means a randomized deck.
	File     string `mapstructure:"-"`
	Hands    int    `mapstructure:"hands"`
	Seed     int64  `mapstructure:"seed"`
	Style    string `mapstructure:"style"`
	Describe bool   `mapstructure:"describe"`
	Ledger   string `mapstructure:"ledger"`
	LogLevel string `mapstructure:"log-level"`
}

// NewFlagSet returns the command line flags of the analyzer.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Int("hands", DefaultHands, "number of hands to deal or load")
	fs.Int64("seed", 0, "seed for a reproducible shuffle, 0 for a cryptographic shuffle")
	fs.String("style", StylePlain, "output style: plain or pretty")
	fs.Bool("describe", false, "append a detailed description to every ranked hand")
	fs.String("ledger", "", "path of a SQLite ledger recording every run")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("config", "", "optional configuration file")
	return fs
}

// Load parses args with fs, then layers ANALYZER_* environment variables and
// the optional configuration file under the flags explicitly set. The result
// is validated.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		c.File = rest[0]
	default:
		return Config{}, fmt.Errorf("%w: expected at most one hand file, got %d", ErrInvalidConfig, len(rest))
	}
	return c, c.Validate()
}

// Validate rejects out of range values.
func (c Config) Validate() error {
	if c.Hands < MinHands || c.Hands > MaxHands {
		return fmt.Errorf("%w: hands must be between %d and %d, got %d", ErrInvalidConfig, MinHands, MaxHands, c.Hands)
	}
	if c.Seed < 0 {
		return fmt.Errorf("%w: seed must not be negative, got %d", ErrInvalidConfig, c.Seed)
	}
	if c.Style != StylePlain && c.Style != StylePretty {
		return fmt.Errorf("%w: unknown style %q", ErrInvalidConfig, c.Style)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
