package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/askwell/apiserver/internal/apperr"
	"github.com/askwell/apiserver/internal/store"
	"github.com/askwell/apiserver/types"
)

// AdminService holds operations restricted to the admin role.
type AdminService struct {
	users UserRepository
	auth  Authorizer
}

func NewAdminService(users UserRepository, auth Authorizer) *AdminService {
	return &AdminService{users: users, auth: auth}
}

// DeleteUser removes the user with the given external id. Requires an
// active session whose user holds the admin role. The user's sessions,
// questions, and answers are deleted along with the row.
func (s *AdminService) DeleteUser(ctx context.Context, accessToken, userUUID string) (types.User, error) {
	_, actor, err := s.auth.Authorize(ctx, accessToken, "")
	if err != nil {
		return types.User{}, err
	}

	if !actor.IsAdmin() {
		return types.User{}, apperr.New(http.StatusForbidden, "ATHR-003",
			"Unauthorized Access, Entered user is not an admin")
	}

	target, err := s.users.GetByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, apperr.New(http.StatusNotFound, "USR-001",
				"User with entered uuid to be deleted does not exist")
		}
		return types.User{}, err
	}

	if err := s.users.Delete(ctx, target.ID); err != nil {
		return types.User{}, err
	}
	return target, nil
}
