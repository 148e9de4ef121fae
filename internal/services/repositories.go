package services

import (
	"context"
	"time"

	"github.com/askwell/apiserver/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByUUID(ctx context.Context, uuid string) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Delete(ctx context.Context, id int) error
}

// SessionRepository defines persistence operations for sign-in sessions.
type SessionRepository interface {
	Create(ctx context.Context, session types.Session) (types.Session, error)
	GetByToken(ctx context.Context, accessToken string) (types.Session, error)
	MarkSignedOut(ctx context.Context, accessToken string, at time.Time) error
}

// QuestionRepository defines persistence operations for questions.
type QuestionRepository interface {
	Create(ctx context.Context, question types.Question) (types.Question, error)
	GetByUUID(ctx context.Context, uuid string) (types.Question, error)
	ListAll(ctx context.Context) ([]types.Question, error)
	ListByUser(ctx context.Context, userID int) ([]types.Question, error)
	UpdateContent(ctx context.Context, id int, content string) error
	Delete(ctx context.Context, id int) error
}

// AnswerRepository defines persistence operations for answers.
type AnswerRepository interface {
	Create(ctx context.Context, answer types.Answer) (types.Answer, error)
	GetByUUID(ctx context.Context, uuid string) (types.Answer, error)
	ListByQuestion(ctx context.Context, questionID int) ([]types.Answer, error)
	UpdateContent(ctx context.Context, id int, content string) error
	Delete(ctx context.Context, id int) error
}
