package attachments

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, a *models.Attachment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attachments (id, user_id, name, ciphertext, nonce, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Name, a.Ciphertext, a.Nonce, a.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]*models.Attachment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, ciphertext, nonce, created_at FROM attachments
		WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select attachments: %w", err)
	}
	defer rows.Close()

	var result []*models.Attachment
	for rows.Next() {
		var a models.Attachment
		var createdAt int64
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Ciphertext, &a.Nonce, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		a.CreatedAt = time.UnixMilli(createdAt).UTC()
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attachments: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}
