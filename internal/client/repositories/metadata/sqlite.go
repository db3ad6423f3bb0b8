package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/biteshare/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

// GetOrCreate inserts gen() only if the key is still absent, then reads the
// winning value back.
func (r *SQLiteRepository) GetOrCreate(ctx context.Context, key string, gen func() ([]byte, error)) ([]byte, error) {
	v, err := r.Get(ctx, key)
	if err != nil || v != nil {
		return v, err
	}

	fresh, err := gen()
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata[%s]: %w", key, err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`, key, fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata[%s]: %w", key, err)
	}
	return r.Get(ctx, key)
}
