package persistence

import (
	"fmt"

	"github.com/khoahotran/portfolio-view/internal/config"
	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

// NewFragmentStore builds the store selected by cfg.Store.Driver. The
// returned close function releases the underlying connection.
func NewFragmentStore(cfg config.Config, log logger.Logger) (portfolio.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn("Using in-memory fragment store, data is lost on restart.")
		return NewMemoryFragmentStore(), func() {}, nil

	case config.StoreDriverSQLite, "":
		db, err := NewSQLiteDB(cfg.Store.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLiteFragmentStore(db), func() { db.Close() }, nil

	case config.StoreDriverRedis:
		rdb, err := NewRedisClient(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisFragmentStore(rdb, cfg.Redis.KeyPrefix), func() { rdb.Close() }, nil

	case config.StoreDriverPostgres:
		pool, err := NewPostgresPool(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresFragmentStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
