package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestion(t *testing.T) {
	f := newFixture(t)
	user := f.signup(t, "alice", "alice@askwell.test")
	session := f.signIn(t, "alice")

	question, err := f.questions.Create(context.Background(), session.AccessToken, "What is Go?")
	require.NoError(t, err)

	assert.NotEmpty(t, question.UUID)
	assert.Equal(t, "What is Go?", question.Content)
	assert.Equal(t, user.ID, question.UserID)
	assert.False(t, question.CreatedAt.IsZero())
}

func TestCreateQuestionRequiresSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.questions.Create(context.Background(), "bogus-token", "What is Go?")
	requireAppErr(t, err, http.StatusForbidden, "ATHR-001")
}

func TestEditQuestionByOwner(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "alice", "alice@askwell.test")
	session := f.signIn(t, "alice")
	question, err := f.questions.Create(context.Background(), session.AccessToken, "draft")
	require.NoError(t, err)

	edited, err := f.questions.Edit(context.Background(), session.AccessToken, question.UUID, "What is Go?")
	require.NoError(t, err)
	assert.Equal(t, question.UUID, edited.UUID)
	assert.Equal(t, "What is Go?", edited.Content)

	stored, err := f.store.Questions().GetByUUID(context.Background(), question.UUID)
	require.NoError(t, err)
	assert.Equal(t, "What is Go?", stored.Content)
}

func TestEditQuestionByNonOwner(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "alice", "alice@askwell.test")
	aliceSession := f.signIn(t, "alice")
	question, err := f.questions.Create(context.Background(), aliceSession.AccessToken, "What is Go?")
	require.NoError(t, err)

	f.signup(t, "bob", "bob@askwell.test")
	bobSession := f.signIn(t, "bob")

	_, err = f.questions.Edit(context.Background(), bobSession.AccessToken, question.UUID, "hijacked")
	requireAppErr(t, err, http.StatusForbidden, "ATHR-003")
}

func TestEditUnknownQuestion(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "alice", "alice@askwell.test")
	session := f.signIn(t, "alice")

	_, err := f.questions.Edit(context.Background(), session.AccessToken, "no-such-question", "text")
	requireAppErr(t, err, http.StatusNotFound, "QUES-001")
}

func TestDeleteQuestionByOwner(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "alice", "alice@askwell.test")
	session := f.signIn(t, "alice")
	question, err := f.questions.Create(context.Background(), session.AccessToken, "What is Go?")
	require.NoError(t, err)

	deleted, err := f.questions.Delete(context.Background(), session.AccessToken, question.UUID)
	require.NoError(t, err)
	assert.Equal(t, question.UUID, deleted.UUID)

	_, err = f.store.Questions().GetByUUID(context.Background(), question.UUID)
	require.Error(t, err)
}

func TestDeleteQuestionByNonOwnerNonAdmin(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "alice", "alice@askwell.test")
	aliceSession := f.signIn(t, "alice")
	question, err := f.questions.Create(context.Background(), aliceSession.AccessToken, "What is Go?")
	require.NoError(t, err)

	f.signup(t, "bob", "bob@askwell.test")
	bobSession := f.signIn(t, "bob")

	_, err = f.questions.Delete(context.Background(), bobSession.AccessToken, question.UUID)
	requireAppErr(t, err, http.StatusForbidden, "ATHR-003")
}

func TestDeleteQuestionByAdmin(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "alice", "alice@askwell.test")
	aliceSession := f.signIn(t, "alice")
	question, err := f.questions.Create(context.Background(), aliceSession.AccessToken, "What is Go?")
	require.NoError(t, err)

	f.createAdmin(t, "root")
	adminSession := f.signIn(t, "root")

	deleted, err := f.questions.Delete(context.Background(), adminSession.AccessToken, question.UUID)
	require.NoError(t, err)
	assert.Equal(t, question.UUID, deleted.UUID)
}

func TestGetAllQuestionsOrderedAndStable(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "alice", "alice@askwell.test")
	session := f.signIn(t, "alice")

	contents := []string{"first", "second", "third"}
	for _, content := range contents {
		_, err := f.questions.Create(context.Background(), session.AccessToken, content)
		require.NoError(t, err)
	}

	first, err := f.questions.GetAll(context.Background(), session.AccessToken)
	require.NoError(t, err)
	require.Len(t, first, 3)
	for i, content := range contents {
		assert.Equal(t, content, first[i].Content)
	}

	second, err := f.questions.GetAll(context.Background(), session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetAllQuestionsByUser(t *testing.T) {
	f := newFixture(t)
	alice := f.signup(t, "alice", "alice@askwell.test")
	aliceSession := f.signIn(t, "alice")
	f.signup(t, "bob", "bob@askwell.test")
	bobSession := f.signIn(t, "bob")

	_, err := f.questions.Create(context.Background(), aliceSession.AccessToken, "by alice")
	require.NoError(t, err)
	_, err = f.questions.Create(context.Background(), bobSession.AccessToken, "by bob")
	require.NoError(t, err)

	questions, err := f.questions.GetAllByUser(context.Background(), bobSession.AccessToken, alice.UUID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "by alice", questions[0].Content)
}

func TestGetAllQuestionsByUnknownUser(t *testing.T) {
	f := newFixture(t)
	f.signup(t, "alice", "alice@askwell.test")
	session := f.signIn(t, "alice")

	_, err := f.questions.GetAllByUser(context.Background(), session.AccessToken, "no-such-user")
	requireAppErr(t, err, http.StatusNotFound, "USR-001")
}
