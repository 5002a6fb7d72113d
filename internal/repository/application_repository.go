package repository

import (
	"context"

	"prison-jobs/internal/database"
	"prison-jobs/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) (application.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error)
}

const applicationSelect = `SELECT a.id, a.user_id, a.job_id, j.title, u.name, COALESCE(a.cv_url, ''), a.cover_note,
	a.status, a.created_at, a.updated_at
 FROM applications a
 JOIN jobs j ON j.id = a.job_id
 JOIN users u ON u.id = a.user_id`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = application.StatusSubmitted
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, user_id, job_id, cv_url, cover_note, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		a.ID, a.UserID, a.JobID, a.CVURL, a.CoverNote, string(a.Status),
	)
	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	a, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, applicationSelect+` WHERE a.user_id = $1 ORDER BY a.created_at DESC`, userID)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, applicationSelect+` WHERE a.job_id = $1 ORDER BY a.created_at DESC`, jobID)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return application.Application{}, err
	}
	if n == 0 {
		return application.Application{}, application.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, q string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	if err := row.Scan(
		&a.ID, &a.UserID, &a.JobID, &a.JobTitle, &a.ApplicantName, &a.CVURL, &a.CoverNote,
		&status, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
