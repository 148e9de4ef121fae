package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/askwell/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerSetup(t *testing.T) (*fixture, types.Session, types.Question) {
	t.Helper()
	f := newFixture(t)
	f.signup(t, "alice", "alice@askwell.test")
	session := f.signIn(t, "alice")
	question, err := f.questions.Create(context.Background(), session.AccessToken, "What is Go?")
	require.NoError(t, err)
	return f, session, question
}

func TestCreateAnswer(t *testing.T) {
	f, session, question := answerSetup(t)

	answer, err := f.answers.Create(context.Background(), session.AccessToken, question.UUID, "A language.")
	require.NoError(t, err)

	assert.NotEmpty(t, answer.UUID)
	assert.Equal(t, question.ID, answer.QuestionID)
	assert.Equal(t, "A language.", answer.Content)
}

func TestCreateAnswerUnknownQuestion(t *testing.T) {
	f, session, _ := answerSetup(t)

	_, err := f.answers.Create(context.Background(), session.AccessToken, "no-such-question", "A language.")
	requireAppErr(t, err, http.StatusNotFound, "QUES-001")
}

func TestEditAnswerByOwner(t *testing.T) {
	f, session, question := answerSetup(t)
	answer, err := f.answers.Create(context.Background(), session.AccessToken, question.UUID, "draft")
	require.NoError(t, err)

	edited, err := f.answers.Edit(context.Background(), session.AccessToken, answer.UUID, "A language.")
	require.NoError(t, err)
	assert.Equal(t, "A language.", edited.Content)
}

func TestEditAnswerByNonOwner(t *testing.T) {
	f, session, question := answerSetup(t)
	answer, err := f.answers.Create(context.Background(), session.AccessToken, question.UUID, "by alice")
	require.NoError(t, err)

	f.signup(t, "bob", "bob@askwell.test")
	bobSession := f.signIn(t, "bob")

	_, err = f.answers.Edit(context.Background(), bobSession.AccessToken, answer.UUID, "hijacked")
	requireAppErr(t, err, http.StatusForbidden, "ATHR-003")
}

func TestEditUnknownAnswer(t *testing.T) {
	f, session, _ := answerSetup(t)

	_, err := f.answers.Edit(context.Background(), session.AccessToken, "no-such-answer", "text")
	requireAppErr(t, err, http.StatusNotFound, "ANS-001")
}

func TestDeleteAnswerByNonOwnerNonAdmin(t *testing.T) {
	f, session, question := answerSetup(t)
	answer, err := f.answers.Create(context.Background(), session.AccessToken, question.UUID, "by alice")
	require.NoError(t, err)

	f.signup(t, "bob", "bob@askwell.test")
	bobSession := f.signIn(t, "bob")

	_, err = f.answers.Delete(context.Background(), bobSession.AccessToken, answer.UUID)
	requireAppErr(t, err, http.StatusForbidden, "ATHR-003")
}

func TestDeleteAnswerByAdmin(t *testing.T) {
	f, session, question := answerSetup(t)
	answer, err := f.answers.Create(context.Background(), session.AccessToken, question.UUID, "by alice")
	require.NoError(t, err)

	f.createAdmin(t, "root")
	adminSession := f.signIn(t, "root")

	deleted, err := f.answers.Delete(context.Background(), adminSession.AccessToken, answer.UUID)
	require.NoError(t, err)
	assert.Equal(t, answer.UUID, deleted.UUID)
}

func TestGetAllAnswersToQuestion(t *testing.T) {
	f, session, question := answerSetup(t)
	for _, content := range []string{"first", "second"} {
		_, err := f.answers.Create(context.Background(), session.AccessToken, question.UUID, content)
		require.NoError(t, err)
	}

	gotQuestion, answers, err := f.answers.GetAllToQuestion(context.Background(), session.AccessToken, question.UUID)
	require.NoError(t, err)
	assert.Equal(t, question.UUID, gotQuestion.UUID)
	require.Len(t, answers, 2)
	assert.Equal(t, "first", answers[0].Content)
	assert.Equal(t, "second", answers[1].Content)
}

func TestGetAllAnswersToUnknownQuestion(t *testing.T) {
	f, session, _ := answerSetup(t)

	_, _, err := f.answers.GetAllToQuestion(context.Background(), session.AccessToken, "no-such-question")
	requireAppErr(t, err, http.StatusNotFound, "QUES-001")
}
