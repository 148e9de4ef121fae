package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/askwell/apiserver/internal/apperr"
)

// ErrorResponse is the wire shape of every failure: a stable
// <DOMAIN>-<NNN> code plus a human-readable message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeError maps a service failure to its HTTP response. Typed
// failures carry their own status and code; anything else is an
// unexpected internal error.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}
	slog.Error("unhandled request error", "error", err)
	writeJSON(w, http.StatusInternalServerError,
		ErrorResponse{Code: "GEN-001", Message: "Internal server error"})
}

// accessToken pulls the bearer token from the authorization header.
// Clients may send the raw token or prefix it with "Bearer ".
func accessToken(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("authorization"))
	if rest, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(rest)
	}
	return auth
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
