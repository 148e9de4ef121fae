package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/askwell/apiserver/internal/apperr"
	"github.com/askwell/apiserver/internal/crypto"
	"github.com/askwell/apiserver/internal/services"
	"github.com/askwell/apiserver/internal/store/memory"
	"github.com/askwell/apiserver/internal/token"
	"github.com/askwell/apiserver/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionTTL = 8 * time.Hour

type fixture struct {
	store     *memory.Store
	auth      *services.AuthService
	users     *services.UserService
	questions *services.QuestionService
	answers   *services.AnswerService
	admin     *services.AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := memory.NewStore()
	issuer, err := token.NewIssuer("test-secret")
	require.NoError(t, err)

	auth := services.NewAuthService(st.Users(), st.Sessions(), issuer, testSessionTTL)
	return &fixture{
		store:     st,
		auth:      auth,
		users:     services.NewUserService(st.Users(), auth),
		questions: services.NewQuestionService(st.Questions(), st.Users(), auth),
		answers:   services.NewAnswerService(st.Answers(), st.Questions(), auth),
		admin:     services.NewAdminService(st.Users(), auth),
	}
}

// signup registers a nonadmin user with a password equal to its
// username plus "-pass".
func (f *fixture) signup(t *testing.T, username, email string) types.User {
	t.Helper()
	user, err := f.auth.Signup(context.Background(), types.User{
		Username: username,
		Email:    email,
	}, username+"-pass")
	require.NoError(t, err)
	return user
}

// signIn opens a session for a user created via signup.
func (f *fixture) signIn(t *testing.T, username string) types.Session {
	t.Helper()
	session, _, err := f.auth.SignIn(context.Background(), username, username+"-pass")
	require.NoError(t, err)
	return session
}

// createAdmin seeds an admin account directly in the store, mirroring
// the production flow where admins are promoted in the database.
func (f *fixture) createAdmin(t *testing.T, username string) types.User {
	t.Helper()
	salt, hash, err := crypto.HashPassword(username + "-pass")
	require.NoError(t, err)
	admin, err := f.store.Users().Create(context.Background(), types.User{
		UUID:         uuid.NewString(),
		Username:     username,
		Email:        username + "@askwell.test",
		Salt:         salt,
		PasswordHash: hash,
		Role:         types.RoleAdmin,
	})
	require.NoError(t, err)
	return admin
}

func requireAppErr(t *testing.T, err error, status int, code string) {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, status, appErr.Status)
}
