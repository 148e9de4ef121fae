package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/askwell/apiserver/internal/apperr"
	"github.com/askwell/apiserver/internal/crypto"
	"github.com/askwell/apiserver/internal/store"
	"github.com/askwell/apiserver/internal/token"
	"github.com/askwell/apiserver/types"
	"github.com/google/uuid"
)

// Authorizer gates protected operations on a valid, active session.
// The action string names the attempted operation and is embedded in
// the signed-out failure message.
type Authorizer interface {
	Authorize(ctx context.Context, accessToken, action string) (types.Session, types.User, error)
}

// AuthService orchestrates signup, sign-in, authorization, and
// sign-out. Per-session state machine: no_session -> active (sign-in),
// active -> signed_out (sign-out, once). Authorization is a read-only
// gate on the active state.
type AuthService struct {
	users      UserRepository
	sessions   SessionRepository
	issuer     *token.Issuer
	sessionTTL time.Duration
}

func NewAuthService(users UserRepository, sessions SessionRepository, issuer *token.Issuer, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		issuer:     issuer,
		sessionTTL: sessionTTL,
	}
}

// Signup registers a new nonadmin user and returns the created record.
// The username check runs before the email check, so a signup that
// reuses both reports the username conflict.
func (s *AuthService) Signup(ctx context.Context, user types.User, password string) (types.User, error) {
	if err := s.checkDuplicates(ctx, user); err != nil {
		return types.User{}, err
	}

	salt, hash, err := crypto.HashPassword(password)
	if err != nil {
		return types.User{}, err
	}

	user.UUID = uuid.NewString()
	user.Salt = salt
	user.PasswordHash = hash
	user.Role = types.RoleNonAdmin

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// The unique index catches concurrent signups the pre-check
		// raced with; report the same conflict kinds.
		switch {
		case errors.Is(err, store.ErrDuplicateUsername):
			return types.User{}, errUsernameTaken()
		case errors.Is(err, store.ErrDuplicateEmail):
			return types.User{}, errEmailRegistered()
		}
		return types.User{}, err
	}
	return created, nil
}

func (s *AuthService) checkDuplicates(ctx context.Context, user types.User) error {
	if _, err := s.users.GetByUsername(ctx, user.Username); err == nil {
		return errUsernameTaken()
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if _, err := s.users.GetByEmail(ctx, user.Email); err == nil {
		return errEmailRegistered()
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// SignIn verifies credentials and opens a new session. Concurrent
// sessions per user are allowed; every sign-in creates a fresh row with
// a fresh token.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (types.Session, types.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Session{}, types.User{}, apperr.New(http.StatusUnauthorized,
				"ATH-001", "This username does not exist")
		}
		return types.Session{}, types.User{}, err
	}

	if !crypto.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return types.Session{}, types.User{}, apperr.New(http.StatusUnauthorized,
			"ATH-002", "Password failed")
	}

	now := time.Now()
	expiresAt := now.Add(s.sessionTTL)
	accessToken, err := s.issuer.Issue(user.UUID, now, expiresAt)
	if err != nil {
		return types.Session{}, types.User{}, err
	}

	session := types.Session{
		UUID:        uuid.NewString(),
		UserID:      user.ID,
		AccessToken: accessToken,
		IssuedAt:    now,
		ExpiresAt:   expiresAt,
	}
	session, err = s.sessions.Create(ctx, session)
	if err != nil {
		return types.Session{}, types.User{}, err
	}
	return session, user, nil
}

// Authorize resolves the access token to an active session and its
// user. It never mutates state. A token without a session fails
// ATHR-001; a signed-out session fails ATHR-002 regardless of expiry;
// an expired session fails ATHR-002 as well.
func (s *AuthService) Authorize(ctx context.Context, accessToken, action string) (types.Session, types.User, error) {
	session, err := s.sessions.GetByToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Session{}, types.User{}, apperr.New(http.StatusForbidden,
				"ATHR-001", "User has not signed in")
		}
		return types.Session{}, types.User{}, err
	}

	if !session.Active() || session.Expired(time.Now()) {
		return types.Session{}, types.User{}, apperr.New(http.StatusForbidden,
			"ATHR-002", signedOutMessage(action))
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return types.Session{}, types.User{}, err
	}
	return session, user, nil
}

// SignOut closes the session bound to the token and returns its user.
// An unknown token and an already-signed-out session both fail with the
// single session-not-active kind.
func (s *AuthService) SignOut(ctx context.Context, accessToken string) (types.User, error) {
	session, err := s.sessions.GetByToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, errSessionNotActive()
		}
		return types.User{}, err
	}
	if !session.Active() {
		return types.User{}, errSessionNotActive()
	}

	if err := s.sessions.MarkSignedOut(ctx, accessToken, time.Now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost a race with a concurrent sign-out on the same token.
			return types.User{}, errSessionNotActive()
		}
		return types.User{}, err
	}

	return s.users.GetByID(ctx, session.UserID)
}

func errUsernameTaken() error {
	return apperr.New(http.StatusConflict,
		"SGR-001", "Try any other Username, this Username has already been taken")
}

func errEmailRegistered() error {
	return apperr.New(http.StatusConflict,
		"SGR-002", "This user has already been registered, try with any other emailId")
}

func errSessionNotActive() error {
	return apperr.New(http.StatusUnauthorized, "SGR-001", "User is not Signed in")
}

func signedOutMessage(action string) string {
	if action == "" {
		return "User is signed out"
	}
	return "User is signed out.Sign in first to " + action
}
