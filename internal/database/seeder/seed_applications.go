package seeder

import (
	"context"
	"fmt"

	"prison-jobs/internal/database"

	"github.com/google/uuid"
)

type ApplicationsSeeder struct{}

func (ApplicationsSeeder) Name() string { return "applications" }

func (ApplicationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "applications", "id", "user_id", "job_id", "cv_url", "cover_note", "status"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	a := sampleApplication
	userID, err := userIDByEmail(ctx, tx, a.Email)
	if err != nil {
		return err
	}
	var jobID uuid.UUID
	if err := tx.QueryRow(ctx, `SELECT id FROM jobs WHERE title = $1 ORDER BY created_at LIMIT 1`, a.JobTitle).Scan(&jobID); err != nil {
		return fmt.Errorf("lookup job %q: %w", a.JobTitle, err)
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO applications (id, user_id, job_id, cv_url, cover_note, status)
		 SELECT $1, $2, $3, $4, $5, $6
		 WHERE NOT EXISTS (SELECT 1 FROM applications WHERE user_id = $2 AND job_id = $3)`,
		uuid.New(), userID, jobID, a.CVURL, a.CoverNote, string(a.Status),
	); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, query string, args ...any) database.Row
}

func userIDByEmail(ctx context.Context, q rowQuerier, email string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := q.QueryRow(ctx, `SELECT id FROM users WHERE lower(email) = lower($1)`, email).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("lookup user %s: %w", email, err)
	}
	return id, nil
}
