package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tanudin/Happy-Child/internal/db"
	"github.com/Tanudin/Happy-Child/internal/domain"
)

const custodyColumns = `id, child_id, user_id, days_of_week, parent_name, parent_type, color, created_at`

// SQLiteCustodyRepo implements CustodyRepo against custody_schedules.
type SQLiteCustodyRepo struct {
	db db.DBTX
}

// NewSQLiteCustodyRepo creates a new SQLiteCustodyRepo.
func NewSQLiteCustodyRepo(conn db.DBTX) *SQLiteCustodyRepo {
	return &SQLiteCustodyRepo{db: conn}
}

func (r *SQLiteCustodyRepo) Insert(ctx context.Context, s *domain.CustodySchedule) error {
	days, err := encodeDays(s.DaysOfWeek)
	if err != nil {
		return err
	}
	query := `INSERT INTO custody_schedules (` + custodyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.ChildID,
		s.UserID,
		days,
		s.ParentName,
		string(s.ParentType),
		s.Color,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting custody schedule: %w", err)
	}
	return nil
}

// ListByChild returns the child's schedules in creation order. Recurring
// rules are month-independent, so there is no date filter.
func (r *SQLiteCustodyRepo) ListByChild(ctx context.Context, childID string) ([]*domain.CustodySchedule, error) {
	query := `SELECT ` + custodyColumns + ` FROM custody_schedules
		WHERE child_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, childID)
	if err != nil {
		return nil, fmt.Errorf("listing custody schedules: %w", err)
	}
	defer rows.Close()
	return r.scanSchedules(rows)
}

func (r *SQLiteCustodyRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM custody_schedules WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting custody schedule: %w", err)
	}
	return nil
}

func (r *SQLiteCustodyRepo) scanSchedules(rows *sql.Rows) ([]*domain.CustodySchedule, error) {
	var schedules []*domain.CustodySchedule
	for rows.Next() {
		var s domain.CustodySchedule
		var daysStr, parentType, createdStr string

		err := rows.Scan(
			&s.ID, &s.ChildID, &s.UserID, &daysStr, &s.ParentName, &parentType, &s.Color, &createdStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning custody schedule: %w", err)
		}

		if s.DaysOfWeek, err = decodeDays(daysStr); err != nil {
			return nil, err
		}
		s.ParentType = domain.ParentType(parentType)
		if s.CreatedAt, err = parseTime(createdStr); err != nil {
			return nil, err
		}
		schedules = append(schedules, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating custody schedules: %w", err)
	}
	return schedules, nil
}
