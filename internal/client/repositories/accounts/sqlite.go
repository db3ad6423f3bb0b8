package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/dmitrijs2005/biteshare/internal/common"
	"github.com/dmitrijs2005/biteshare/internal/dbx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectAccount = `SELECT id, email, name, role, karma_points, student_id, preferences, salt, verifier, created_at FROM accounts`

func (r *SQLiteRepository) Create(ctx context.Context, a *models.Account) error {
	studentID, prefs := profileColumns(a.User)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, name, role, karma_points, student_id, preferences, salt, verifier, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.User.ID, a.User.Email, a.User.Name, string(a.User.Role()), a.User.KarmaPoints,
		studentID, prefs, a.Salt, a.Verifier, a.CreatedAt.UnixMilli())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account %s: %w", a.User.Email, common.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, selectAccount+` WHERE email = ?`, strings.TrimSpace(email))
	return scanAccount(row)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, selectAccount+` WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *SQLiteRepository) UpdateUser(ctx context.Context, u *models.User) error {
	studentID, prefs := profileColumns(u)

	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET name = ?, karma_points = ?, student_id = ?, preferences = ?
		WHERE id = ?`,
		u.Name, u.KarmaPoints, studentID, prefs, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
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

func (r *SQLiteRepository) TopByKarma(ctx context.Context, limit int) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAccount+` ORDER BY karma_points DESC, name ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, a.User)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	var (
		id, email, name, role, studentID, prefs string
		karma                                   int
		createdAt                               int64
		a                                       models.Account
	)
	err := s.Scan(&id, &email, &name, &role, &karma, &studentID, &prefs, &a.Salt, &a.Verifier, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	u, err := models.NewUser(id, email, name, models.Role(role))
	if err != nil {
		return nil, err
	}
	u.KarmaPoints = karma

	var p models.Profile
	switch u.Role() {
	case models.RoleStudent:
		p = models.StudentProfile{StudentID: studentID}
	case models.RoleDonor:
		set, err := models.NewPreferenceSet(splitPrefs(prefs)...)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", id, err)
		}
		p = models.DonorProfile{Preferences: set}
	}
	if err := u.SetProfile(p); err != nil {
		return nil, err
	}

	a.User = u
	a.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &a, nil
}

func profileColumns(u *models.User) (studentID, prefs string) {
	if sp, ok := u.StudentProfile(); ok {
		studentID = sp.StudentID
	}
	if dp, ok := u.DonorProfile(); ok {
		parts := make([]string, len(dp.Preferences))
		for i, c := range dp.Preferences {
			parts[i] = string(c)
		}
		prefs = strings.Join(parts, ",")
	}
	return studentID, prefs
}

func splitPrefs(s string) []models.Category {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]models.Category, len(parts))
	for i, p := range parts {
		out[i] = models.Category(p)
	}
	return out
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
