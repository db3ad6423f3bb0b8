package donations

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

func (r *SQLiteRepository) Create(ctx context.Context, d *models.Donation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO donations (id, donor_id, request_id, amount, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.DonorID, d.RequestID, d.Amount, d.Message, d.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByDonor(ctx context.Context, donorID string) ([]*models.Donation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, donor_id, request_id, amount, message, created_at FROM donations
		WHERE donor_id = ? ORDER BY created_at DESC, id`, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to select donations: %w", err)
	}
	defer rows.Close()

	var result []*models.Donation
	for rows.Next() {
		var d models.Donation
		var createdAt int64
		if err := rows.Scan(&d.ID, &d.DonorID, &d.RequestID, &d.Amount, &d.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		d.CreatedAt = time.UnixMilli(createdAt).UTC()
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate donations: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Totals(ctx context.Context, donorID string) (int, int, error) {
	var count, amount int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM donations WHERE donor_id = ?`, donorID).
		Scan(&count, &amount)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to total donations: %w", err)
	}
	return count, amount, nil
}
