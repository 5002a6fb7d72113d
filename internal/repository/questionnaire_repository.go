package repository

import (
	"context"
	"encoding/json"

	"prison-jobs/internal/database"
	"prison-jobs/internal/domain/questionnaire"

	"github.com/google/uuid"
)

type QuestionnaireRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, answers questionnaire.AnswerSet) (questionnaire.Response, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (questionnaire.Response, error)
}

type PostgresQuestionnaireRepository struct {
	db database.DB
}

func NewPostgresQuestionnaireRepository(db database.DB) *PostgresQuestionnaireRepository {
	return &PostgresQuestionnaireRepository{db: db}
}

// Upsert replaces the stored answer set of the user wholesale.
func (r *PostgresQuestionnaireRepository) Upsert(ctx context.Context, userID uuid.UUID, answers questionnaire.AnswerSet) (questionnaire.Response, error) {
	b, err := json.Marshal(answers)
	if err != nil {
		return questionnaire.Response{}, err
	}

	resp := questionnaire.Response{UserID: userID, Answers: answers.Clone()}
	row := r.db.QueryRow(ctx,
		`INSERT INTO questionnaire_responses (id, user_id, answers)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET answers = EXCLUDED.answers, updated_at = now()
		 RETURNING id, created_at, updated_at`,
		uuid.New(), userID, b,
	)
	if err := row.Scan(&resp.ID, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return questionnaire.Response{}, err
	}
	return resp, nil
}

func (r *PostgresQuestionnaireRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (questionnaire.Response, error) {
	var resp questionnaire.Response
	var raw []byte
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, answers, created_at, updated_at
		 FROM questionnaire_responses
		 WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&resp.ID, &resp.UserID, &raw, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		if database.IsNoRows(err) {
			return questionnaire.Response{}, questionnaire.ErrNotFound
		}
		return questionnaire.Response{}, err
	}
	if err := json.Unmarshal(raw, &resp.Answers); err != nil {
		return questionnaire.Response{}, err
	}
	return resp, nil
}
