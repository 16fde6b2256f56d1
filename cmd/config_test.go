package cmd

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env file
	for _, k := range []string{EnvLedgerFile, EnvCurrency, EnvLogFormat, EnvVerbose} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LedgerFile: "shopping.csv",
		Currency:   "USD",
		LogFormat:  "console",
	}, cfg)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvLedgerFile, "groceries.db")
	t.Setenv(EnvCurrency, " eur ")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvVerbose, "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LedgerFile: "groceries.db",
		Currency:   "EUR",
		LogFormat:  "json",
		Verbose:    true,
	}, cfg)
}

func TestLoadConfig_NoCurrency(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvCurrency, "none")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Currency)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvCurrency, "")
	require.NoError(t, os.WriteFile(".env", []byte("SHOP_LEDGER_FILE=from-dotenv.csv\n"), 0644))
	// godotenv does not override variables already set.
	t.Setenv(EnvLedgerFile, "")
	require.NoError(t, os.Unsetenv(EnvLedgerFile))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", cfg.LedgerFile)
}

func TestLoadConfig_MalformedDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("SHOP-CURRENCY=EUR\n"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSetGlobalFlags(t *testing.T) {
	oldLedger, oldCurrency, oldFormat, oldVerbose := ledgerFile, currency, logFormat, Verbose
	t.Cleanup(func() { ledgerFile, currency, logFormat, Verbose = oldLedger, oldCurrency, oldFormat, oldVerbose })

	f := flag.NewFlagSet("shop", flag.ContinueOnError)
	SetGlobalFlags(f, &Config{LedgerFile: "a.csv", Currency: "USD", LogFormat: "console"})
	require.NoError(t, f.Parse([]string{"-currency", "EUR", "-v", "list"}))

	assert.Equal(t, "a.csv", ledgerFile)
	assert.Equal(t, "EUR", currency)
	assert.True(t, Verbose)
	assert.Equal(t, []string{"list"}, f.Args())
}
