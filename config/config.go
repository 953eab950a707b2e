// Package config loads the settings of pft from a config file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/agent"
	"github.com/etnz/wealth/selic"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every pft command.
type Config struct {
	LedgerFile string `mapstructure:"ledger_file"`
	Currency   string `mapstructure:"currency"`
	Addr       string `mapstructure:"addr"`
	SelicURL   string `mapstructure:"selic_url"`
	Model      string `mapstructure:"model"`
	// CacheSize is the number of computed ledgers the server keeps in memory.
	CacheSize int `mapstructure:"cache_size"`
}

// Defaults.
const (
	DefaultLedgerFile = "wealth.csv"
	DefaultCurrency   = wealth.DefaultCurrency
	DefaultAddr       = ":8080"
	DefaultSelicURL   = selic.DefaultURL
	DefaultModel      = agent.DefaultModel
	DefaultCacheSize  = 64
)

// EnvPrefix prefixes the environment variables overriding the config file, like PFT_CURRENCY.
const EnvPrefix = "PFT"

// Load reads the config file at path, or pft.yaml in the current directory or in
// $HOME/.config/pft if path is empty. A missing default file is not an error.
//
// Variables in a .env file of the current directory are loaded in the environment first,
// without overriding the ones already set. The environment overrides the config file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("ledger_file", DefaultLedgerFile)
	v.SetDefault("currency", DefaultCurrency)
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("selic_url", DefaultSelicURL)
	v.SetDefault("model", DefaultModel)
	v.SetDefault("cache_size", DefaultCacheSize)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pft")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pft"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Currency = strings.ToUpper(cfg.Currency)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	var errs error
	if money.GetCurrency(c.Currency) == nil {
		errs = errors.Join(errs, fmt.Errorf("unknown currency %q", c.Currency))
	}
	if c.CacheSize < 0 {
		errs = errors.Join(errs, fmt.Errorf("negative cache_size %d", c.CacheSize))
	}
	if c.SelicURL == "" {
		errs = errors.Join(errs, errors.New("selic_url is required"))
	}
	return errs
}
