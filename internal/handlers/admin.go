package handlers

import (
	"net/http"

	"github.com/askwell/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
)

// AdminHandler provides admin-only endpoints.
type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AdminRouter registers admin routes on the given router.
func AdminRouter(r chi.Router, adminService *services.AdminService) {
	handler := NewAdminHandler(adminService)

	r.Delete("/user/{userId}", handler.DeleteUser)
}

type UserDeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userUUID := chi.URLParam(r, "userId")
	deleted, err := h.adminService.DeleteUser(r.Context(), accessToken(r), userUUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UserDeleteResponse{ID: deleted.UUID, Status: "USER SUCCESSFULLY DELETED"})
}
