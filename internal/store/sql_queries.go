package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Query builders for the SQLite credential backend. All builders use the
// question-mark placeholder format that go-sqlite3 expects.

func buildGetCredentialQuery(_ context.Context, key string) (string, []any, error) {
	query, args, err := sq.
		Select("value").
		From("credentials").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertCredentialQuery(_ context.Context, key, value string) (string, []any, error) {
	query, args, err := sq.
		Insert("credentials").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteCredentialQuery(_ context.Context, key string) (string, []any, error) {
	query, args, err := sq.
		Delete("credentials").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
