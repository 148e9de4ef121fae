package types

import "time"

// Role values assigned to users. Every signup creates a nonadmin user;
// admins are promoted directly in the database.
const (
	RoleAdmin    = "admin"
	RoleNonAdmin = "nonadmin"
)

// User represents an account in the system.
type User struct {
	// ID is the internal storage key. It is never exposed externally.
	ID int `json:"-" db:"id"`

	// UUID is the stable public identifier of the user.
	UUID string `json:"uuid" db:"uuid"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username" db:"username"`

	// Email is the user's email address, unique across accounts.
	Email string `json:"email" db:"email"`

	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`

	// PasswordHash and Salt store the salted one-way derivation of the
	// user's password. Never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`
	Salt         string `json:"-" db:"salt"`

	Country       string `json:"country" db:"country"`
	AboutMe       string `json:"about_me" db:"about_me"`
	DateOfBirth   string `json:"dob" db:"dob"`
	ContactNumber string `json:"contact_number" db:"contact_number"`

	// Role is either RoleAdmin or RoleNonAdmin.
	Role string `json:"role" db:"role"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
