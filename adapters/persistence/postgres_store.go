package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/apperror"
)

type postgresFragmentStore struct {
	db *pgxpool.Pool
}

func NewPostgresFragmentStore(db *pgxpool.Pool) portfolio.Store {
	return &postgresFragmentStore{db: db}
}

var psqlFragment = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresFragmentStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psqlFragment.Select("payload").
		From("portfolio_fragments").
		Where(sq.Eq{"fragment_key": key}).
		ToSql()
	if err != nil {
		return "", false, apperror.NewInternal("failed to build fragment query", err)
	}

	var payload string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, apperror.NewUnavailable("failed to query fragment "+key, err)
	}
	return payload, true, nil
}

func (r *postgresFragmentStore) Set(ctx context.Context, key, value string) error {
	query, args, err := psqlFragment.Insert("portfolio_fragments").
		Columns("fragment_key", "payload", "updated_at").
		Values(key, value, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (fragment_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build fragment upsert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewUnavailable("failed to upsert fragment "+key, err)
	}
	return nil
}
