// Package cmd implements the CLI application to manage a shopping list.
package cmd

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/shopping"
	"github.com/etnz/shopping/sqlite"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// commands lists the subcommands by group.
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"items", &addCmd{}},
	{"items", &removeCmd{}},
	{"items", &listCmd{}},
	{"reports", &totalCmd{}},
	{"reports", &queryCmd{}},
	{"files", &exportCmd{}},
	{"files", &importCmd{}},
	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// IsCommand reports whether name is a registered subcommand.
func IsCommand(name string) bool {
	for _, e := range commands {
		if e.cmd.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile string
	currency   string
	logFormat  string
	// Verbose enables debug logs.
	Verbose bool

	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// SetGlobalFlags declares the global flags on f, using cfg for the defaults.
func SetGlobalFlags(f *flag.FlagSet, cfg *Config) {
	f.StringVar(&ledgerFile, "ledger-file", cfg.LedgerFile, "Path to the working shopping list. A .db, .sqlite or .sqlite3 extension selects a SQLite database, anything else a CSV file.")
	f.StringVar(&currency, "currency", cfg.Currency, "Currency code used to display amounts (ISO 4217), empty for none.")
	f.StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format on stderr: console or json.")
	f.BoolVar(&Verbose, "v", cfg.Verbose, "Enable verbose (debug) logs.")
}

// isSQLite reports whether path designates a SQLite database.
func isSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// DecodeLedger loads the working shopping list. A missing file is an empty list.
func DecodeLedger(ctx context.Context) (*shopping.Ledger, error) {
	if isSQLite(ledgerFile) {
		s, err := sqlite.Open(ledgerFile)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.Load(ctx)
	}

	l, err := shopping.ImportFile(ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("file", ledgerFile).Msg("ledger file does not exist, starting with an empty list")
		return shopping.NewLedger(), nil
	}
	return l, err
}

// EncodeLedger saves the working shopping list.
func EncodeLedger(ctx context.Context, l *shopping.Ledger) error {
	if isSQLite(ledgerFile) {
		s, err := sqlite.Open(ledgerFile)
		if err != nil {
			return err
		}
		defer s.Close()
		return s.Save(ctx, l)
	}
	return shopping.ExportFile(ledgerFile, l)
}
