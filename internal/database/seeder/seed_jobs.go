package seeder

import (
	"context"
	"fmt"

	"prison-jobs/internal/database"

	"github.com/google/uuid"
)

// JobsSeeder inserts the sample jobs that are not present yet, matched by
// title.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "category", "description", "requirements", "salary", "location", "posted_by", "status"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	posters := map[string]uuid.UUID{}
	for _, j := range sampleJobs {
		postedBy, ok := posters[j.PostedBy]
		if !ok {
			postedBy, err = userIDByEmail(ctx, tx, j.PostedBy)
			if err != nil {
				return err
			}
			posters[j.PostedBy] = postedBy
		}

		if _, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, title, category, description, requirements, salary, location, posted_by, status)
			 SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
			 WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE title = $2)`,
			uuid.New(), j.Title, j.Category, j.Description, j.Requirements, j.Salary, j.Location, postedBy, string(j.Status),
		); err != nil {
			return fmt.Errorf("insert job %q: %w", j.Title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
