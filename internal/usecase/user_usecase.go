package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"prison-jobs/internal/domain/resume"
	"prison-jobs/internal/domain/user"
	"prison-jobs/internal/repository"
	ucuser "prison-jobs/internal/usecase/user"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrResumeNotFound = errors.New("resume data not found")
)

type ResumeInput struct {
	Skills     []string
	Experience *string
	ParsedData json.RawMessage
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	GetResume(ctx context.Context, userID uuid.UUID) (resume.Data, error)
	PutResume(ctx context.Context, userID uuid.UUID, in ResumeInput) (resume.Data, error)
}

type User struct {
	svc     *ucuser.Service
	resumes repository.ResumeRepository
}

func NewUserUsecase(users user.Repository, resumes repository.ResumeRepository) *User {
	return &User{svc: ucuser.NewService(users), resumes: resumes}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.svc.GetMe(ctx, userID)
	if err != nil {
		if errors.Is(err, ucuser.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (u *User) GetResume(ctx context.Context, userID uuid.UUID) (resume.Data, error) {
	d, err := u.resumes.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return resume.Data{}, ErrResumeNotFound
		}
		return resume.Data{}, ErrInternal
	}
	return d, nil
}

// PutResume replaces the resume data of the user. parsed_data must be a JSON
// object when present.
func (u *User) PutResume(ctx context.Context, userID uuid.UUID, in ResumeInput) (resume.Data, error) {
	if userID == uuid.Nil {
		return resume.Data{}, ErrUnauthorized
	}
	if len(in.ParsedData) > 0 {
		var obj map[string]any
		if err := json.Unmarshal(in.ParsedData, &obj); err != nil || obj == nil {
			return resume.Data{}, ErrInvalidInput
		}
	}

	var experience *string
	if in.Experience != nil {
		if s := strings.TrimSpace(*in.Experience); s != "" {
			experience = &s
		}
	}

	d, err := u.resumes.Upsert(ctx, resume.Data{
		UserID:     userID,
		Skills:     normalizeSkills(in.Skills),
		Experience: experience,
		ParsedData: in.ParsedData,
	})
	if err != nil {
		return resume.Data{}, ErrInternal
	}
	return d, nil
}

func normalizeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}
