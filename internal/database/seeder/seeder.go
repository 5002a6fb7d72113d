package seeder

import (
	"context"

	"prison-jobs/internal/database"
)

// Seeder inserts one kind of development fixture. Run must be idempotent:
// seeding twice leaves the same users, jobs, applications and answers.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
