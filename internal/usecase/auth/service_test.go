package auth

import (
	"context"
	"testing"

	"prison-jobs/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byID map[uuid.UUID]user.User
}

func (m *memUsers) CreateUser(_ context.Context, u user.User) error {
	for _, it := range m.byID {
		if it.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func newTestService() (*Service, *memUsers) {
	repo := &memUsers{byID: map[uuid.UUID]user.User{}}
	return NewServiceWithCost(repo, bcrypt.MinCost), repo
}

func TestService_Register(t *testing.T) {
	svc, repo := newTestService()

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Dana Reyes ",
		Email:    " Dana@Example.COM ",
		Password: "correct-horse",
		Role:     user.RoleRecruiter,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", u.Name)
	assert.Equal(t, "dana@example.com", u.Email)
	assert.Equal(t, user.RoleRecruiter, u.Role)
	assert.Empty(t, u.PasswordHash)

	stored := repo.byID[u.ID]
	require.NotEmpty(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestService_Register_DefaultsToJobSeeker(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterInput{Name: "Sam", Email: "sam@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleJobSeeker, u.Role)
}

func TestService_Register_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   RegisterInput
	}{
		{name: "missing name", in: RegisterInput{Email: "a@example.com", Password: "password1"}},
		{name: "missing email", in: RegisterInput{Name: "A", Password: "password1"}},
		{name: "malformed email", in: RegisterInput{Name: "A", Email: "not-an-email", Password: "password1"}},
		{name: "short password", in: RegisterInput{Name: "A", Email: "a@example.com", Password: "short"}},
		{name: "unknown role", in: RegisterInput{Name: "A", Email: "a@example.com", Password: "password1", Role: "warden"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService()
			_, err := svc.Register(context.Background(), tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	in := RegisterInput{Name: "A", Email: "dup@example.com", Password: "password1"}

	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	in.Email = "DUP@example.com"
	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestService_Login(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), LoginInput{Email: "A@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)

	_, err = svc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginInput{Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
