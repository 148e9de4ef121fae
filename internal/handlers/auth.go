package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/askwell/apiserver/internal/apperr"
	"github.com/askwell/apiserver/internal/services"
	"github.com/askwell/apiserver/types"
	"github.com/go-chi/chi/v5"
)

// AuthHandler provides the signup, sign-in, and sign-out endpoints.
type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AuthRouter registers the user auth routes on the given router.
func AuthRouter(r chi.Router, authService *services.AuthService) {
	handler := NewAuthHandler(authService)

	r.Post("/signup", handler.Signup)
	r.Post("/signin", handler.SignIn)
	r.Post("/signout", handler.SignOut)
}

type SignupUserRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Username      string `json:"user_name"`
	Email         string `json:"email_address"`
	Password      string `json:"password"`
	Country       string `json:"country"`
	AboutMe       string `json:"about_me"`
	DateOfBirth   string `json:"dob"`
	ContactNumber string `json:"contact_number"`
}

type SignupUserResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SigninResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type SignoutResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Signup registers a new user and returns its external id.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "GEN-001", Message: "Invalid request body"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "GEN-001", Message: "Missing required fields"})
		return
	}

	user := types.User{
		Username:      req.Username,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Country:       req.Country,
		AboutMe:       req.AboutMe,
		DateOfBirth:   req.DateOfBirth,
		ContactNumber: req.ContactNumber,
	}

	created, err := h.authService.Signup(r.Context(), user, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SignupUserResponse{
		ID:     created.UUID,
		Status: "USER SUCCESSFULLY REGISTERED",
	})
}

// SignIn authenticates HTTP Basic credentials carried in the
// authorization header and opens a session. The issued token is
// returned in the access-token response header.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	username, password, err := basicCredentials(r)
	if err != nil {
		writeError(w, err)
		return
	}

	session, user, err := h.authService.SignIn(r.Context(), username, password)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("access-token", session.AccessToken)
	writeJSON(w, http.StatusOK, SigninResponse{
		ID:      user.UUID,
		Message: "SIGNED IN SUCCESSFULLY",
	})
}

// SignOut closes the session bound to the presented token.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.SignOut(r.Context(), accessToken(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SignoutResponse{
		ID:      user.UUID,
		Message: "SIGNED OUT SUCCESSFULLY",
	})
}

func basicCredentials(r *http.Request) (username, password string, err error) {
	auth := strings.TrimSpace(r.Header.Get("authorization"))
	encoded, ok := strings.CutPrefix(auth, "Basic ")
	if !ok {
		return "", "", apperr.New(http.StatusBadRequest, "GEN-001", "Invalid authorization header")
	}
	decoded, decodeErr := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if decodeErr != nil {
		return "", "", apperr.New(http.StatusBadRequest, "GEN-001", "Invalid authorization header")
	}
	username, password, ok = strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", apperr.New(http.StatusBadRequest, "GEN-001", "Invalid authorization header")
	}
	return username, password, nil
}
