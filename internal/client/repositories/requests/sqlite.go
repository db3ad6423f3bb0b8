package requests

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/dmitrijs2005/biteshare/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectRequest = `SELECT id, student_id, student_name, type, title, description, urgency, status, amount, items, created_at FROM requests`

func (r *SQLiteRepository) Create(ctx context.Context, req *models.Request) error {
	items := req.Items
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO requests (id, student_id, student_name, type, title, description, urgency, status, amount, items, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.StudentID, req.StudentName, string(req.Type), req.Title, req.Description,
		string(req.Urgency), string(req.Status), req.Amount, string(b), req.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Request, error) {
	return scanRequest(r.db.QueryRowContext(ctx, selectRequest+` WHERE id = ?`, id))
}

func (r *SQLiteRepository) ListByStudent(ctx context.Context, studentID string, status models.RequestStatus) ([]*models.Request, error) {
	query := selectRequest + ` WHERE student_id = ?`
	args := []any{studentID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id`
	return r.list(ctx, query, args...)
}

func (r *SQLiteRepository) ListOpen(ctx context.Context) ([]*models.Request, error) {
	query := selectRequest + ` WHERE status IN ('pending', 'accepted')
		ORDER BY CASE urgency WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, created_at DESC, id`
	return r.list(ctx, query)
}

func (r *SQLiteRepository) SetStatus(ctx context.Context, id string, status models.RequestStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE requests SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) CountByStatus(ctx context.Context, studentID string) (map[models.RequestStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM requests WHERE student_id = ? GROUP BY status`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.RequestStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan request count: %w", err)
		}
		counts[models.RequestStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate request counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]*models.Request, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select requests: %w", err)
	}
	defer rows.Close()

	var result []*models.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate requests: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(s scanner) (*models.Request, error) {
	var (
		req                             models.Request
		typ, urgency, status, itemsJSON string
		createdAt                       int64
	)
	err := s.Scan(&req.ID, &req.StudentID, &req.StudentName, &typ, &req.Title, &req.Description,
		&urgency, &status, &req.Amount, &itemsJSON, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan request: %w", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &req.Items); err != nil {
		return nil, fmt.Errorf("request %s: bad items: %w", req.ID, err)
	}
	if len(req.Items) == 0 {
		req.Items = nil
	}
	req.Type = models.Category(typ)
	req.Urgency = models.Urgency(urgency)
	req.Status = models.RequestStatus(status)
	req.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &req, nil
}
