// Package sqlite persists a shopping ledger in a SQLite database.
//
// It is an alternative to the comma separated file for the working copy of the
// ledger: items are stored one per row with their enumeration position, unit
// prices are stored as text so that they are read back exactly.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/etnz/shopping"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is a ledger persisted in a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating it if needed, and brings its
// schema up to date.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database %q: %w", shopping.ErrIO, path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database %q: %w", shopping.ErrIO, path, err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migrate %q: %w", shopping.ErrIO, path, err)
	}
	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the ledger stored in the database.
//
// A row that does not hold a valid item is an shopping.ErrParse.
func (s *Store) Load(ctx context.Context) (*shopping.Ledger, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, quantity, unit_price FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: query items: %w", shopping.ErrIO, err)
	}
	defer rows.Close()

	l := shopping.NewLedger()
	for rows.Next() {
		var name, price string
		var quantity int64
		if err := rows.Scan(&name, &quantity, &price); err != nil {
			return nil, fmt.Errorf("%w: scan item: %w", shopping.ErrIO, err)
		}
		p, err := shopping.ParsePrice(price)
		if err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", shopping.ErrParse, name, err)
		}
		if quantity < 0 || name == "" {
			return nil, fmt.Errorf("%w: item %q: invalid row", shopping.ErrParse, name)
		}
		l.Put(name, shopping.LineItem{Quantity: quantity, UnitPrice: p})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read items: %w", shopping.ErrIO, err)
	}
	log.Debug().Int("items", l.Len()).Msg("loaded ledger from sqlite")
	return l, nil
}

// Save replaces the content of the database with l, in a single transaction.
func (s *Store) Save(ctx context.Context, l *shopping.Ledger) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", shopping.ErrIO, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("%w: clear items: %w", shopping.ErrIO, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items (position, name, quantity, unit_price) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %w", shopping.ErrIO, err)
	}
	defer stmt.Close()

	position := 0
	for name, item := range l.All() {
		if _, err := stmt.ExecContext(ctx, position, name, item.Quantity, item.UnitPrice.String()); err != nil {
			return fmt.Errorf("%w: insert %q: %w", shopping.ErrIO, name, err)
		}
		position++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", shopping.ErrIO, err)
	}
	log.Debug().Int("items", position).Msg("saved ledger to sqlite")
	return nil
}
