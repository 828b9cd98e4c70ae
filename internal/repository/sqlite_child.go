package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tanudin/Happy-Child/internal/db"
	"github.com/Tanudin/Happy-Child/internal/domain"
)

// SQLiteChildRepo implements ChildRepo against the children table.
type SQLiteChildRepo struct {
	db db.DBTX
}

// NewSQLiteChildRepo creates a new SQLiteChildRepo.
func NewSQLiteChildRepo(conn db.DBTX) *SQLiteChildRepo {
	return &SQLiteChildRepo{db: conn}
}

func (r *SQLiteChildRepo) Create(ctx context.Context, c *domain.Child) error {
	query := `INSERT INTO children (id, user_id, name, birth_date, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		nullableDateToValue(c.BirthDate),
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting child: %w", err)
	}
	return nil
}

func (r *SQLiteChildRepo) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	query := `SELECT id, user_id, name, birth_date, created_at FROM children WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	c, err := r.scanChild(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("child: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning child: %w", err)
	}
	return c, nil
}

func (r *SQLiteChildRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Child, error) {
	query := `SELECT id, user_id, name, birth_date, created_at FROM children
		WHERE user_id = ? ORDER BY created_at, name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing children: %w", err)
	}
	defer rows.Close()

	var children []*domain.Child
	for rows.Next() {
		c, err := r.scanChild(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning child: %w", err)
		}
		children = append(children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating children: %w", err)
	}
	return children, nil
}

// Delete removes the child; calendar events and custody schedules cascade.
func (r *SQLiteChildRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM children WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting child: %w", err)
	}
	return nil
}

func (r *SQLiteChildRepo) scanChild(scan func(dest ...any) error) (*domain.Child, error) {
	var c domain.Child
	var birthDate sql.NullString
	var createdStr string

	if err := scan(&c.ID, &c.UserID, &c.Name, &birthDate, &createdStr); err != nil {
		return nil, err
	}

	if birthDate.Valid && birthDate.String != "" {
		d, err := domain.ParseCalDate(birthDate.String)
		if err != nil {
			return nil, err
		}
		c.BirthDate = &d
	}
	var err error
	if c.CreatedAt, err = parseTime(createdStr); err != nil {
		return nil, err
	}
	return &c, nil
}
