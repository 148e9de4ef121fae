package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/askwell/apiserver/internal/apperr"
	"github.com/askwell/apiserver/internal/store"
	"github.com/askwell/apiserver/types"
	"github.com/google/uuid"
)

// QuestionService performs ownership-checked CRUD on questions. Every
// operation authorizes the caller's session first; authorization
// failures propagate verbatim.
type QuestionService struct {
	questions QuestionRepository
	users     UserRepository
	auth      Authorizer
}

func NewQuestionService(questions QuestionRepository, users UserRepository, auth Authorizer) *QuestionService {
	return &QuestionService{
		questions: questions,
		users:     users,
		auth:      auth,
	}
}

// Create posts a question authored by the session's user. Always
// permitted for any active session.
func (s *QuestionService) Create(ctx context.Context, accessToken, content string) (types.Question, error) {
	_, user, err := s.auth.Authorize(ctx, accessToken, "post a question")
	if err != nil {
		return types.Question{}, err
	}

	question := types.Question{
		UUID:      uuid.NewString(),
		Content:   content,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	return s.questions.Create(ctx, question)
}

// GetAll returns every question, ordered by creation.
func (s *QuestionService) GetAll(ctx context.Context, accessToken string) ([]types.Question, error) {
	if _, _, err := s.auth.Authorize(ctx, accessToken, "get all questions"); err != nil {
		return nil, err
	}
	return s.questions.ListAll(ctx)
}

// GetAllByUser returns the questions posted by the user with the given
// external id.
func (s *QuestionService) GetAllByUser(ctx context.Context, accessToken, userUUID string) ([]types.Question, error) {
	if _, _, err := s.auth.Authorize(ctx, accessToken, "get all questions posted by a specific user"); err != nil {
		return nil, err
	}

	target, err := s.users.GetByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.New(http.StatusNotFound, "USR-001",
				"User with entered uuid whose question details are to be seen does not exist")
		}
		return nil, err
	}
	return s.questions.ListByUser(ctx, target.ID)
}

// Edit replaces a question's content. Only the author may edit.
func (s *QuestionService) Edit(ctx context.Context, accessToken, questionUUID, content string) (types.Question, error) {
	_, user, err := s.auth.Authorize(ctx, accessToken, "edit the question")
	if err != nil {
		return types.Question{}, err
	}

	question, err := s.questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Question{}, errQuestionUUIDUnknown()
		}
		return types.Question{}, err
	}

	if question.UserID != user.ID {
		return types.Question{}, apperr.New(http.StatusForbidden, "ATHR-003",
			"Only the question owner can edit the question")
	}

	if err := s.questions.UpdateContent(ctx, question.ID, content); err != nil {
		return types.Question{}, err
	}
	question.Content = content
	return question, nil
}

// Delete removes a question. Permitted for the author or an admin.
func (s *QuestionService) Delete(ctx context.Context, accessToken, questionUUID string) (types.Question, error) {
	_, user, err := s.auth.Authorize(ctx, accessToken, "delete the question")
	if err != nil {
		return types.Question{}, err
	}

	question, err := s.questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Question{}, errQuestionUUIDUnknown()
		}
		return types.Question{}, err
	}

	if question.UserID != user.ID && !user.IsAdmin() {
		return types.Question{}, apperr.New(http.StatusForbidden, "ATHR-003",
			"Only the question owner or admin can delete the question")
	}

	if err := s.questions.Delete(ctx, question.ID); err != nil {
		return types.Question{}, err
	}
	return question, nil
}

func errQuestionUUIDUnknown() error {
	return apperr.New(http.StatusNotFound, "QUES-001", "Entered question uuid does not exist")
}
