package types

import "time"

// Question is a piece of content posted by a user. The author reference
// is immutable after creation; deletion is allowed for the author or an
// admin.
type Question struct {
	ID        int       `json:"-" db:"id"`
	UUID      string    `json:"uuid" db:"uuid"`
	Content   string    `json:"content" db:"content"`
	UserID    int       `json:"-" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
