package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/apperror"
)

type sqliteFragmentStore struct {
	db *sql.DB
}

func NewSQLiteFragmentStore(db *sql.DB) portfolio.Store {
	return &sqliteFragmentStore{db: db}
}

var sqliteFragment = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func (s *sqliteFragmentStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := sqliteFragment.Select("payload").
		From("portfolio_fragments").
		Where(sq.Eq{"fragment_key": key}).
		ToSql()
	if err != nil {
		return "", false, apperror.NewInternal("failed to build fragment query", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, apperror.NewUnavailable("failed to read fragment "+key, err)
	}
	return value, true, nil
}

func (s *sqliteFragmentStore) Set(ctx context.Context, key, value string) error {
	query, args, err := sqliteFragment.Insert("portfolio_fragments").
		Columns("fragment_key", "payload", "updated_at").
		Values(key, value, time.Now().UTC().Unix()).
		Suffix("ON CONFLICT(fragment_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build fragment upsert", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return apperror.NewUnavailable("failed to write fragment "+key, err)
	}
	return nil
}
