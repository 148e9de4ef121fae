package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/askwell/apiserver/types"
)

const userColumns = `id, uuid, username, email, first_name, last_name, password_hash, salt,
		country, about_me, dob, contact_number, role, created_at`

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByUUID(ctx context.Context, uuid string) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE uuid = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, uuid))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	user.CreatedAt = time.Now()

	const query = `
		INSERT INTO users (uuid, username, email, first_name, last_name, password_hash, salt,
			country, about_me, dob, contact_number, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.db.QueryRowContext(
		ctx,
		query,
		user.UUID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		user.Salt,
		user.Country,
		user.AboutMe,
		user.DateOfBirth,
		user.ContactNumber,
		user.Role,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		switch {
		case uniqueViolationOn(err, "users_username_key"):
			return types.User{}, ErrDuplicateUsername
		case uniqueViolationOn(err, "users_email_key"):
			return types.User{}, ErrDuplicateEmail
		}
		return types.User{}, err
	}
	return user, nil
}

// Delete removes a user row. The schema cascades the delete to the
// user's sessions, questions, and answers.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM users WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) scanOne(row *sql.Row) (types.User, error) {
	var user types.User
	err := row.Scan(
		&user.ID,
		&user.UUID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.Salt,
		&user.Country,
		&user.AboutMe,
		&user.DateOfBirth,
		&user.ContactNumber,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}
