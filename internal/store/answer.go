package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/askwell/apiserver/types"
)

// AnswerRepository handles persistence for answers.
type AnswerRepository struct {
	db *sql.DB
}

func NewAnswerRepository(db *sql.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func (r *AnswerRepository) Create(ctx context.Context, answer types.Answer) (types.Answer, error) {
	const query = `
		INSERT INTO answers (uuid, content, user_id, question_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRowContext(
		ctx,
		query,
		answer.UUID,
		answer.Content,
		answer.UserID,
		answer.QuestionID,
		answer.CreatedAt,
	).Scan(&answer.ID)
	if err != nil {
		return types.Answer{}, err
	}
	return answer, nil
}

func (r *AnswerRepository) GetByUUID(ctx context.Context, uuid string) (types.Answer, error) {
	const query = `
		SELECT id, uuid, content, user_id, question_id, created_at
		FROM answers
		WHERE uuid = $1`
	var answer types.Answer
	err := r.db.QueryRowContext(ctx, query, uuid).Scan(
		&answer.ID,
		&answer.UUID,
		&answer.Content,
		&answer.UserID,
		&answer.QuestionID,
		&answer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Answer{}, ErrNotFound
		}
		return types.Answer{}, err
	}
	return answer, nil
}

func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID int) ([]types.Answer, error) {
	const query = `
		SELECT id, uuid, content, user_id, question_id, created_at
		FROM answers
		WHERE question_id = $1
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make([]types.Answer, 0)
	for rows.Next() {
		var answer types.Answer
		if err := rows.Scan(
			&answer.ID,
			&answer.UUID,
			&answer.Content,
			&answer.UserID,
			&answer.QuestionID,
			&answer.CreatedAt,
		); err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *AnswerRepository) UpdateContent(ctx context.Context, id int, content string) error {
	const query = `UPDATE answers SET content = $1 WHERE id = $2`
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

func (r *AnswerRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM answers WHERE id = $1`
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
