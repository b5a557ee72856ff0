package persistence

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func TestFileStore_LoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	fs := NewFileStore(testLogger(), path)

	doc, err := fs.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotExist)
	assert.Nil(t, doc)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	fs := NewFileStore(testLogger(), path)
	ctx := context.Background()

	doc := SeedDocument()
	require.NoError(t, fs.Save(ctx, doc))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, doc.Account.ID, loaded.Account.ID)
	assert.Equal(t, doc.Account.Balance, loaded.Account.Balance)
	assert.Equal(t, doc.Account.AccountNumber, loaded.Account.AccountNumber)
	assert.Equal(t, doc.NextSeq, loaded.NextSeq)
	require.Len(t, loaded.Transactions, len(doc.Transactions))
	for i := range doc.Transactions {
		assert.Equal(t, doc.Transactions[i].ID, loaded.Transactions[i].ID)
		assert.Equal(t, doc.Transactions[i].Amount, loaded.Transactions[i].Amount)
		assert.Equal(t, doc.Transactions[i].Direction, loaded.Transactions[i].Direction)
	}
	require.Len(t, loaded.Notifications, len(doc.Notifications))
	assert.Equal(t, doc.Banks, loaded.Banks)
	assert.Equal(t, "json_file", loaded.Meta.Storage)
	assert.Equal(t, DocumentVersion, loaded.Meta.Version)
}

func TestFileStore_SaveDoesNotMutateArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	fs := NewFileStore(testLogger(), path)

	doc := SeedDocument()
	metaBefore := doc.Meta
	require.NoError(t, fs.Save(context.Background(), doc))

	assert.Equal(t, metaBefore, doc.Meta, "Save must stamp Meta on its own copy")
}

func TestFileStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wallet.json")
	fs := NewFileStore(testLogger(), path)

	require.NoError(t, fs.Save(context.Background(), SeedDocument()))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away after save")
}

func TestFileStore_SaveReplacesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	fs := NewFileStore(testLogger(), path)
	ctx := context.Background()

	first := SeedDocument()
	require.NoError(t, fs.Save(ctx, first))

	second := first.Clone()
	second.Account.Balance = 12345
	require.NoError(t, fs.Save(ctx, second))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), loaded.Account.Balance)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	fs := NewFileStore(testLogger(), path)
	_, err := fs.Load(context.Background())

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "load", ioErr.Op)
}

func TestDocument_Clone(t *testing.T) {
	doc := SeedDocument()
	clone := doc.Clone()

	clone.Account.Balance = 1
	clone.Transactions[0].Amount = 1
	clone.Notifications[0].Read = true
	clone.Banks[0].Name = "Changed"

	assert.NotEqual(t, doc.Account.Balance, clone.Account.Balance)
	assert.NotEqual(t, doc.Transactions[0].Amount, clone.Transactions[0].Amount)
	assert.NotEqual(t, doc.Notifications[0].Read, clone.Notifications[0].Read)
	assert.NotEqual(t, doc.Banks[0].Name, clone.Banks[0].Name)
}

func TestSeedDocument(t *testing.T) {
	doc := SeedDocument()

	assert.Equal(t, int64(80065660), doc.Account.Balance)
	assert.Equal(t, "1234567890", doc.Account.AccountNumber)
	assert.Len(t, doc.Transactions, 3)
	assert.Len(t, doc.Notifications, 2)
	assert.Len(t, doc.Banks, 10)

	// Record ids must be unique across both logs.
	seen := map[string]bool{}
	for _, tx := range doc.Transactions {
		assert.False(t, seen[tx.ID], "duplicate id %s", tx.ID)
		seen[tx.ID] = true
	}
	for _, n := range doc.Notifications {
		assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
}
