package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Environment variables read by LoadConfig, and passed to extensions.
const (
	EnvLedgerFile = "SHOP_LEDGER_FILE"
	EnvCurrency   = "SHOP_CURRENCY"
	EnvLogFormat  = "SHOP_LOG_FORMAT"
	EnvVerbose    = "SHOP_VERBOSE"
)

const envPrefix = "SHOP_"

// Config holds the defaults of the global flags.
type Config struct {
	LedgerFile string
	Currency   string
	LogFormat  string
	Verbose    bool
}

// LoadConfig reads the configuration from SHOP_* environment variables and an
// optional .env file in the current directory. A .env file that cannot be
// parsed is an error.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	keyOf := func(s string) string { return strings.ToLower(strings.TrimPrefix(s, envPrefix)) }
	if err := k.Load(env.Provider(envPrefix, ".", keyOf), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		LedgerFile: valueOrDefault(k.String(keyOf(EnvLedgerFile)), "shopping.csv"),
		Currency:   strings.ToUpper(strings.TrimSpace(valueOrDefault(k.String(keyOf(EnvCurrency)), "USD"))),
		LogFormat:  valueOrDefault(k.String(keyOf(EnvLogFormat)), "console"),
		Verbose:    k.Bool(keyOf(EnvVerbose)),
	}
	// "none" is the only way to ask for no currency from the environment.
	if cfg.Currency == "NONE" {
		cfg.Currency = ""
	}
	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
