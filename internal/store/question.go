package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/askwell/apiserver/types"
)

// QuestionRepository handles persistence for questions.
type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question types.Question) (types.Question, error) {
	const query = `
		INSERT INTO questions (uuid, content, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRowContext(
		ctx,
		query,
		question.UUID,
		question.Content,
		question.UserID,
		question.CreatedAt,
	).Scan(&question.ID)
	if err != nil {
		return types.Question{}, err
	}
	return question, nil
}

func (r *QuestionRepository) GetByUUID(ctx context.Context, uuid string) (types.Question, error) {
	const query = `
		SELECT id, uuid, content, user_id, created_at
		FROM questions
		WHERE uuid = $1`
	var question types.Question
	err := r.db.QueryRowContext(ctx, query, uuid).Scan(
		&question.ID,
		&question.UUID,
		&question.Content,
		&question.UserID,
		&question.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Question{}, ErrNotFound
		}
		return types.Question{}, err
	}
	return question, nil
}

// ListAll returns every question ordered by creation time. The id
// tiebreak keeps the order stable for rows created in the same instant.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]types.Question, error) {
	const query = `
		SELECT id, uuid, content, user_id, created_at
		FROM questions
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *QuestionRepository) ListByUser(ctx context.Context, userID int) ([]types.Question, error) {
	const query = `
		SELECT id, uuid, content, user_id, created_at
		FROM questions
		WHERE user_id = $1
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *QuestionRepository) UpdateContent(ctx context.Context, id int, content string) error {
	const query = `UPDATE questions SET content = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, content, id)
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

// Delete removes a question row; the schema cascades to its answers.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM questions WHERE id = $1`
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

func scanQuestions(rows *sql.Rows) ([]types.Question, error) {
	questions := make([]types.Question, 0)
	for rows.Next() {
		var question types.Question
		if err := rows.Scan(
			&question.ID,
			&question.UUID,
			&question.Content,
			&question.UserID,
			&question.CreatedAt,
		); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}
