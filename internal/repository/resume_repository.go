package repository

import (
	"context"
	"encoding/json"

	"prison-jobs/internal/database"
	"prison-jobs/internal/domain/resume"

	"github.com/google/uuid"
)

type ResumeRepository interface {
	Upsert(ctx context.Context, d resume.Data) (resume.Data, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (resume.Data, error)
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Upsert(ctx context.Context, d resume.Data) (resume.Data, error) {
	if d.Skills == nil {
		d.Skills = []string{}
	}
	skills, err := json.Marshal(d.Skills)
	if err != nil {
		return resume.Data{}, err
	}
	var parsed []byte
	if len(d.ParsedData) > 0 {
		parsed = d.ParsedData
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO resume_data (id, user_id, skills, experience, parsed_data)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET skills = EXCLUDED.skills, experience = EXCLUDED.experience,
		     parsed_data = EXCLUDED.parsed_data, updated_at = now()
		 RETURNING id, created_at, updated_at`,
		uuid.New(), d.UserID, skills, d.Experience, parsed,
	)
	if err := row.Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return resume.Data{}, err
	}
	return d, nil
}

func (r *PostgresResumeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (resume.Data, error) {
	var d resume.Data
	var skills, parsed []byte
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, skills, experience, parsed_data, created_at, updated_at
		 FROM resume_data
		 WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&d.ID, &d.UserID, &skills, &d.Experience, &parsed, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if database.IsNoRows(err) {
			return resume.Data{}, resume.ErrNotFound
		}
		return resume.Data{}, err
	}
	d.Skills = []string{}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &d.Skills); err != nil {
			return resume.Data{}, err
		}
	}
	if len(parsed) > 0 {
		d.ParsedData = json.RawMessage(parsed)
	}
	return d, nil
}
