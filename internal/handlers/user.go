package handlers

import (
	"net/http"

	"github.com/askwell/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
)

// UserHandler provides profile lookup endpoints.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UserDetailsResponse struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Username      string `json:"user_name"`
	Email         string `json:"email_address"`
	Country       string `json:"country"`
	AboutMe       string `json:"about_me"`
	DateOfBirth   string `json:"dob"`
	ContactNumber string `json:"contact_number"`
}

// GetProfile returns the profile of the user with the given external id.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userUUID := chi.URLParam(r, "userId")
	user, err := h.userService.GetProfile(r.Context(), accessToken(r), userUUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UserDetailsResponse{
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Username:      user.Username,
		Email:         user.Email,
		Country:       user.Country,
		AboutMe:       user.AboutMe,
		DateOfBirth:   user.DateOfBirth,
		ContactNumber: user.ContactNumber,
	})
}
