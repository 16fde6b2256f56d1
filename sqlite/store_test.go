package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/etnz/shopping"
	"github.com/etnz/shopping/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shopping.db")
	s := openStore(t, path)

	empty, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	l := shopping.NewLedger()
	require.NoError(t, l.UpsertString("milk", "2", "1.15"))
	require.NoError(t, l.UpsertString("bread", "1", "2.50"))
	require.NoError(t, l.UpsertString("apples", "6", "0.333333333333"))
	require.NoError(t, s.Save(ctx, l))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"milk", "bread", "apples"}, got.Names())
	for name, want := range l.All() {
		item, ok := got.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, want.Quantity, item.Quantity)
		assert.True(t, want.UnitPrice.Equal(item.UnitPrice), "%s: %s != %s", name, item.UnitPrice, want.UnitPrice)
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "shopping.db"))

	l := shopping.NewLedger()
	require.NoError(t, l.UpsertString("milk", "2", "1.15"))
	require.NoError(t, l.UpsertString("bread", "1", "2.50"))
	require.NoError(t, s.Save(ctx, l))

	require.NoError(t, l.Delete("milk"))
	require.NoError(t, l.UpsertString("milk", "1", "1.15"))
	require.NoError(t, s.Save(ctx, l))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bread", "milk"}, got.Names())
}

func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shopping.db")

	s, err := sqlite.Open(path)
	require.NoError(t, err)
	l := shopping.NewLedger()
	require.NoError(t, l.UpsertString("tea", "3", "4.20"))
	require.NoError(t, s.Save(ctx, l))
	require.NoError(t, s.Close())

	// migrations are already applied, opening again must not fail.
	s = openStore(t, path)
	got, err := s.Load(ctx)
	require.NoError(t, err)
	item, ok := got.Get("tea")
	require.True(t, ok)
	assert.Equal(t, int64(3), item.Quantity)
}
