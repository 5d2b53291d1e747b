package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
)

type LocalStorageRepository struct {
	db *sqlx.DB
}

func NewLocalStorageRepo(db *sqlx.DB) *LocalStorageRepository {
	return &LocalStorageRepository{db: db}
}

func (r *LocalStorageRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM local_storage WHERE key = $1`
	var value string
	if err := r.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (r *LocalStorageRepository) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO local_storage (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, key, string(value))
	return err
}

func (r *LocalStorageRepository) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM local_storage WHERE key = $1`
	_, err := r.db.ExecContext(ctx, query, key)
	return err
}

var _ ports.LocalStorage = (*LocalStorageRepository)(nil)
