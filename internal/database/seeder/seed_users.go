package seeder

import (
	"context"
	"fmt"

	"prison-jobs/internal/database"
	ucauth "prison-jobs/internal/usecase/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UsersSeeder creates one account per role, all sharing Password.
type UsersSeeder struct {
	Password string
	Cost     int
}

func (UsersSeeder) Name() string { return "users" }

func (s UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "name", "email", "password_hash", "role"); err != nil {
		return err
	}

	cost := s.Cost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := ucauth.HashPassword(s.Password, cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range sampleUsers {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO users (id, name, email, password_hash, role)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT ((lower(email))) DO NOTHING`,
			uuid.New(), u.Name, u.Email, hash, string(u.Role),
		); err != nil {
			return fmt.Errorf("insert user %s: %w", u.Email, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
