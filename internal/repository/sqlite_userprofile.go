package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tanudin/Happy-Child/internal/db"
	"github.com/Tanudin/Happy-Child/internal/domain"
)

// SQLiteUserProfileRepo implements UserProfileRepo. The table holds at
// most one row: the locally signed-in parent whose id stamps every write.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

// NewSQLiteUserProfileRepo creates a new SQLiteUserProfileRepo.
func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT user_id, display_name, email, created_at FROM user_profile LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.UserProfile
	var createdStr string
	err := row.Scan(&p.UserID, &p.DisplayName, &p.Email, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	if p.CreatedAt, err = parseTime(createdStr); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	// Single-user store: replace whatever profile is there.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_profile`); err != nil {
		return fmt.Errorf("clearing user profile: %w", err)
	}
	query := `INSERT INTO user_profile (user_id, display_name, email, created_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.DisplayName, p.Email, formatTime(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
