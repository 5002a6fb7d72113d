package handler

import (
	"context"
	"encoding/json"
	"testing"

	"prison-jobs/internal/delivery/http/dto"
	"prison-jobs/internal/domain/resume"
	"prison-jobs/internal/domain/user"
	"prison-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	resumes map[uuid.UUID]resume.Data
	put     usecase.ResumeInput
	putErr  error
}

func (s *stubUsers) GetMe(_ context.Context, id uuid.UUID) (user.User, error) {
	return user.User{ID: id}, nil
}

func (s *stubUsers) GetResume(_ context.Context, id uuid.UUID) (resume.Data, error) {
	d, ok := s.resumes[id]
	if !ok {
		return resume.Data{}, usecase.ErrResumeNotFound
	}
	return d, nil
}

func (s *stubUsers) PutResume(_ context.Context, id uuid.UUID, in usecase.ResumeInput) (resume.Data, error) {
	if s.putErr != nil {
		return resume.Data{}, s.putErr
	}
	s.put = in
	d := resume.Data{ID: uuid.New(), UserID: id, Skills: in.Skills, Experience: in.Experience, ParsedData: in.ParsedData}
	s.resumes[id] = d
	return d, nil
}

func newUserEnv(uc usecase.UserUsecase) *testEnv {
	return newTestEnv(func(app *fiber.App, auth fiber.Handler) {
		NewUserHandler(uc).RegisterRoutes(app.Group("/users"), auth)
	})
}

func TestUserHandler_Resume(t *testing.T) {
	uc := &stubUsers{resumes: map[uuid.UUID]resume.Data{}}
	env := newUserEnv(uc)
	seeker := env.token(t, uuid.New(), user.RoleJobSeeker)

	status, body := env.do(t, fiber.MethodGet, "/users/me/resume", nil, seeker)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Resume data not found", body.Message)

	req := dto.ResumeRequest{
		Skills:     []string{"First Aid", "Forklift"},
		Experience: strPtr("3-5 years"),
		ParsedData: json.RawMessage(`{"certifications":["CPR"]}`),
	}
	status, _ = env.do(t, fiber.MethodPut, "/users/me/resume", req, seeker)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"First Aid", "Forklift"}, uc.put.Skills)
	assert.JSONEq(t, `{"certifications":["CPR"]}`, string(uc.put.ParsedData))

	status, body = env.do(t, fiber.MethodGet, "/users/me/resume", nil, seeker)
	require.Equal(t, fiber.StatusOK, status)
	var out dto.ResumeResponse
	decodeData(t, body, &out)
	assert.Equal(t, "3-5 years", *out.Experience)
}

func TestUserHandler_ResumeErrors(t *testing.T) {
	env := newUserEnv(&stubUsers{resumes: map[uuid.UUID]resume.Data{}, putErr: usecase.ErrInvalidInput})

	status, _ := env.do(t, fiber.MethodGet, "/users/me/resume", nil, env.token(t, uuid.New(), user.RoleAdmin))
	assert.Equal(t, fiber.StatusForbidden, status)

	status, body := env.do(t, fiber.MethodPut, "/users/me/resume", map[string]any{"parsed_data": []int{1}}, env.token(t, uuid.New(), user.RoleJobSeeker))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "parsed_data must be a JSON object", body.Message)
}
