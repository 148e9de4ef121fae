package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end walk through the core flows: two users, an ownership
// violation, and an admin cleanup.
func TestTwoUsersAndAdminFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.signup(t, "alice", "a@x.com")
	aliceSession := f.signIn(t, "alice")

	q1, err := f.questions.Create(ctx, aliceSession.AccessToken, "What is Go?")
	require.NoError(t, err)

	bob := f.signup(t, "bob", "b@x.com")
	bobSession := f.signIn(t, "bob")

	_, err = f.questions.Edit(ctx, bobSession.AccessToken, q1.UUID, "What is Rust?")
	requireAppErr(t, err, http.StatusForbidden, "ATHR-003")

	f.createAdmin(t, "root")
	adminSession := f.signIn(t, "root")

	deleted, err := f.admin.DeleteUser(ctx, adminSession.AccessToken, bob.UUID)
	require.NoError(t, err)
	assert.Equal(t, bob.UUID, deleted.UUID)

	// Bob's session died with the cascade; Alice's question survives.
	_, _, err = f.auth.Authorize(ctx, bobSession.AccessToken, "post a question")
	requireAppErr(t, err, http.StatusForbidden, "ATHR-001")

	questions, err := f.questions.GetAll(ctx, aliceSession.AccessToken)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is Go?", questions[0].Content)
}
