package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/askwell/apiserver/internal/apperr"
	"github.com/askwell/apiserver/internal/store"
	"github.com/askwell/apiserver/types"
)

// UserService exposes profile lookups available to any signed-in user.
type UserService struct {
	users UserRepository
	auth  Authorizer
}

func NewUserService(users UserRepository, auth Authorizer) *UserService {
	return &UserService{users: users, auth: auth}
}

// GetProfile returns the user with the given external id.
func (s *UserService) GetProfile(ctx context.Context, accessToken, userUUID string) (types.User, error) {
	if _, _, err := s.auth.Authorize(ctx, accessToken, "get user details"); err != nil {
		return types.User{}, err
	}

	user, err := s.users.GetByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, apperr.New(http.StatusNotFound, "USR-001",
				"User with entered uuid does not exist")
		}
		return types.User{}, err
	}
	return user, nil
}
