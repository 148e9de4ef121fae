// Package apperr defines the typed failures returned by the service
// layer. Every public operation fails with an error from a closed set;
// each carries the wire-level (code, message) pair and the HTTP status
// it maps to.
package apperr

// Error is an expected, typed failure. Codes follow the
// <DOMAIN>-<NNN> convention (ATHR-001, USR-001, QUES-001, ...).
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Code + " " + e.Message
}

// New constructs a typed failure.
func New(status int, code, message string) *Error {
	return &Error{Code: code, Message: message, Status: status}
}
