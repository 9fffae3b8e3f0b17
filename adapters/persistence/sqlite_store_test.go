package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-view/internal/config"
	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

func TestSQLiteFragmentStore(t *testing.T) {
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "portfolio.db"), logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	runStoreContract(t, NewSQLiteFragmentStore(db))
}

func TestSQLiteFragmentStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")
	ctx := context.Background()

	db, err := NewSQLiteDB(path, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, NewSQLiteFragmentStore(db).Set(ctx, portfolio.KeyProjects, `[{"name":"X"}]`))
	require.NoError(t, db.Close())

	db, err = NewSQLiteDB(path, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	v, found, err := NewSQLiteFragmentStore(db).Get(ctx, portfolio.KeyProjects)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"name":"X"}]`, v)
}

func TestSQLiteFragmentStore_ClosedDBReportsError(t *testing.T) {
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "portfolio.db"), logger.NewNopLogger())
	require.NoError(t, err)
	store := NewSQLiteFragmentStore(db)
	require.NoError(t, db.Close())

	_, found, err := store.Get(context.Background(), portfolio.KeyBasicInfo)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestNewFragmentStore(t *testing.T) {
	var cfg config.Config
	log := logger.NewNopLogger()

	cfg.Store.Driver = config.StoreDriverMemory
	store, closeFn, err := NewFragmentStore(cfg, log)
	require.NoError(t, err)
	closeFn()
	assert.NotNil(t, store)

	cfg.Store.Driver = config.StoreDriverSQLite
	cfg.Store.SQLitePath = filepath.Join(t.TempDir(), "p.db")
	store, closeFn, err = NewFragmentStore(cfg, log)
	require.NoError(t, err)
	t.Cleanup(closeFn)
	runStoreContract(t, store)

	cfg.Store.Driver = "mongodb"
	_, _, err = NewFragmentStore(cfg, log)
	assert.ErrorContains(t, err, "unknown store driver")
}
