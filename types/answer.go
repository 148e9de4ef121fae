package types

import "time"

// Answer is a reply to a question. It has exactly one author and exactly
// one parent question, both fixed at creation.
type Answer struct {
	ID         int       `json:"-" db:"id"`
	UUID       string    `json:"uuid" db:"uuid"`
	Content    string    `json:"content" db:"content"`
	UserID     int       `json:"-" db:"user_id"`
	QuestionID int       `json:"-" db:"question_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
