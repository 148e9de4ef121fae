package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/askwell/apiserver/types"
)

// SessionRepository handles persistence for sign-in sessions. Sessions
// are append-only except for the single sign-out update; rows are never
// deleted so they remain queryable as audit history.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session types.Session) (types.Session, error) {
	const query = `
		INSERT INTO sessions (uuid, user_id, access_token, issued_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRowContext(
		ctx,
		query,
		session.UUID,
		session.UserID,
		session.AccessToken,
		session.IssuedAt,
		session.ExpiresAt,
	).Scan(&session.ID)
	if err != nil {
		return types.Session{}, err
	}
	return session, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, accessToken string) (types.Session, error) {
	const query = `
		SELECT id, uuid, user_id, access_token, issued_at, expires_at, signed_out_at
		FROM sessions
		WHERE access_token = $1`
	var session types.Session
	var signedOutAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, accessToken).Scan(
		&session.ID,
		&session.UUID,
		&session.UserID,
		&session.AccessToken,
		&session.IssuedAt,
		&session.ExpiresAt,
		&signedOutAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Session{}, ErrNotFound
		}
		return types.Session{}, err
	}
	if signedOutAt.Valid {
		at := signedOutAt.Time
		session.SignedOutAt = &at
	}
	return session, nil
}

// MarkSignedOut stamps the session's sign-out time. The predicate on
// signed_out_at keeps the mutation one-shot: a session already signed
// out reports ErrNotFound.
func (r *SessionRepository) MarkSignedOut(ctx context.Context, accessToken string, at time.Time) error {
	const query = `
		UPDATE sessions
		SET signed_out_at = $1
		WHERE access_token = $2 AND signed_out_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, at, accessToken)
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
