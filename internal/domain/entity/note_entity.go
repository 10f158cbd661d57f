package entity

import (
	"time"
)

// Note is a plain text note owned by a single user.
type Note struct {
	ID        string
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
