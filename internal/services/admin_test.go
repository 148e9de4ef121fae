package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserRequiresAdminRole(t *testing.T) {
	f := newFixture(t)
	target := f.signup(t, "alice", "alice@askwell.test")
	f.signup(t, "bob", "bob@askwell.test")
	bobSession := f.signIn(t, "bob")

	_, err := f.admin.DeleteUser(context.Background(), bobSession.AccessToken, target.UUID)
	requireAppErr(t, err, http.StatusForbidden, "ATHR-003")
}

func TestDeleteUnknownUser(t *testing.T) {
	f := newFixture(t)
	f.createAdmin(t, "root")
	adminSession := f.signIn(t, "root")

	_, err := f.admin.DeleteUser(context.Background(), adminSession.AccessToken, "no-such-user")
	requireAppErr(t, err, http.StatusNotFound, "USR-001")
}

func TestDeleteUserAsAdmin(t *testing.T) {
	f := newFixture(t)
	target := f.signup(t, "alice", "alice@askwell.test")
	f.createAdmin(t, "root")
	adminSession := f.signIn(t, "root")

	deleted, err := f.admin.DeleteUser(context.Background(), adminSession.AccessToken, target.UUID)
	require.NoError(t, err)
	assert.Equal(t, target.UUID, deleted.UUID)

	_, err = f.store.Users().GetByUUID(context.Background(), target.UUID)
	require.Error(t, err)
}

func TestDeleteUserCascadesContent(t *testing.T) {
	f := newFixture(t)
	target := f.signup(t, "alice", "alice@askwell.test")
	aliceSession := f.signIn(t, "alice")
	question, err := f.questions.Create(context.Background(), aliceSession.AccessToken, "What is Go?")
	require.NoError(t, err)

	f.createAdmin(t, "root")
	adminSession := f.signIn(t, "root")

	_, err = f.admin.DeleteUser(context.Background(), adminSession.AccessToken, target.UUID)
	require.NoError(t, err)

	_, err = f.store.Questions().GetByUUID(context.Background(), question.UUID)
	require.Error(t, err)
}

func TestDeleteUserRequiresActiveSession(t *testing.T) {
	f := newFixture(t)
	target := f.signup(t, "alice", "alice@askwell.test")
	f.createAdmin(t, "root")
	adminSession := f.signIn(t, "root")

	_, err := f.auth.SignOut(context.Background(), adminSession.AccessToken)
	require.NoError(t, err)

	_, err = f.admin.DeleteUser(context.Background(), adminSession.AccessToken, target.UUID)
	requireAppErr(t, err, http.StatusForbidden, "ATHR-002")
}
