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

// AnswerService performs ownership-checked CRUD on answers.
type AnswerService struct {
	answers   AnswerRepository
	questions QuestionRepository
	auth      Authorizer
}

func NewAnswerService(answers AnswerRepository, questions QuestionRepository, auth Authorizer) *AnswerService {
	return &AnswerService{
		answers:   answers,
		questions: questions,
		auth:      auth,
	}
}

// Create posts an answer to the question with the given external id.
func (s *AnswerService) Create(ctx context.Context, accessToken, questionUUID, content string) (types.Answer, error) {
	_, user, err := s.auth.Authorize(ctx, accessToken, "post an answer")
	if err != nil {
		return types.Answer{}, err
	}

	question, err := s.questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Answer{}, apperr.New(http.StatusNotFound, "QUES-001",
				"The question entered is invalid")
		}
		return types.Answer{}, err
	}

	answer := types.Answer{
		UUID:       uuid.NewString(),
		Content:    content,
		UserID:     user.ID,
		QuestionID: question.ID,
		CreatedAt:  time.Now(),
	}
	return s.answers.Create(ctx, answer)
}

// Edit replaces an answer's content. Only the author may edit.
func (s *AnswerService) Edit(ctx context.Context, accessToken, answerUUID, content string) (types.Answer, error) {
	_, user, err := s.auth.Authorize(ctx, accessToken, "edit an answer")
	if err != nil {
		return types.Answer{}, err
	}

	answer, err := s.answers.GetByUUID(ctx, answerUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Answer{}, errAnswerUUIDUnknown()
		}
		return types.Answer{}, err
	}

	if answer.UserID != user.ID {
		return types.Answer{}, apperr.New(http.StatusForbidden, "ATHR-003",
			"Only the answer owner can edit the answer")
	}

	if err := s.answers.UpdateContent(ctx, answer.ID, content); err != nil {
		return types.Answer{}, err
	}
	answer.Content = content
	return answer, nil
}

// Delete removes an answer. Permitted for the author or an admin.
func (s *AnswerService) Delete(ctx context.Context, accessToken, answerUUID string) (types.Answer, error) {
	_, user, err := s.auth.Authorize(ctx, accessToken, "delete an answer")
	if err != nil {
		return types.Answer{}, err
	}

	answer, err := s.answers.GetByUUID(ctx, answerUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Answer{}, errAnswerUUIDUnknown()
		}
		return types.Answer{}, err
	}

	if answer.UserID != user.ID && !user.IsAdmin() {
		return types.Answer{}, apperr.New(http.StatusForbidden, "ATHR-003",
			"Only the answer owner or admin can delete the answer")
	}

	if err := s.answers.Delete(ctx, answer.ID); err != nil {
		return types.Answer{}, err
	}
	return answer, nil
}

// GetAllToQuestion returns the question and its answers ordered by
// creation.
func (s *AnswerService) GetAllToQuestion(ctx context.Context, accessToken, questionUUID string) (types.Question, []types.Answer, error) {
	if _, _, err := s.auth.Authorize(ctx, accessToken, "get the answers"); err != nil {
		return types.Question{}, nil, err
	}

	question, err := s.questions.GetByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Question{}, nil, apperr.New(http.StatusNotFound, "QUES-001",
				"The question with entered uuid whose details are to be seen does not exist")
		}
		return types.Question{}, nil, err
	}

	answers, err := s.answers.ListByQuestion(ctx, question.ID)
	if err != nil {
		return types.Question{}, nil, err
	}
	return question, answers, nil
}

func errAnswerUUIDUnknown() error {
	return apperr.New(http.StatusNotFound, "ANS-001", "Entered answer uuid does not exist")
}
