package domain

import (
	"fmt"
	"time"
)

// Child is the record every calendar is scoped to.
type Child struct {
	ID        string
	UserID    string
	Name      string
	BirthDate *CalDate
	CreatedAt time.Time
}

// Validate checks required fields before persistence.
func (c *Child) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("child name is required")
	}
	return nil
}
