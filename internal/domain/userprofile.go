package domain

import "time"

// UserProfile is the locally stored identity of the signed-in parent.
// The store holds at most one row; its UserID stamps every write.
type UserProfile struct {
	UserID      string
	DisplayName string
	Email       string
	CreatedAt   time.Time
}
