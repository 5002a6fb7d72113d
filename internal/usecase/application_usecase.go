package usecase

import (
	"context"
	"errors"
	"strings"

	"prison-jobs/internal/domain/application"
	"prison-jobs/internal/domain/job"
	"prison-jobs/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplyInput struct {
	JobID     uuid.UUID
	CVURL     string
	CoverNote *string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID uuid.UUID, in ApplyInput) (application.Application, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]application.Application, error)
	ListForJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error)
}

type Applications struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	logger *zap.Logger
}

func NewApplicationUsecase(apps repository.ApplicationRepository, jobs repository.JobRepository, logger *zap.Logger) *Applications {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Applications{apps: apps, jobs: jobs, logger: logger}
}

// Apply records an application against an approved job. Jobs that are
// missing or not approved are reported the same way.
func (u *Applications) Apply(ctx context.Context, userID uuid.UUID, in ApplyInput) (application.Application, error) {
	if userID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}
	cvURL := strings.TrimSpace(in.CVURL)
	if in.JobID == uuid.Nil || cvURL == "" {
		return application.Application{}, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrInternal
	}
	if j.Status != job.StatusApproved {
		return application.Application{}, ErrJobNotFound
	}

	created, err := u.apps.Create(ctx, application.Application{
		UserID:    userID,
		JobID:     j.ID,
		JobTitle:  j.Title,
		CVURL:     cvURL,
		CoverNote: trimOptional(in.CoverNote),
		Status:    application.StatusSubmitted,
	})
	if err != nil {
		u.logger.Error("application create failed", zap.String("job_id", j.ID.String()), zap.Error(err))
		return application.Application{}, ErrInternal
	}
	return created, nil
}

func (u *Applications) ListMine(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.apps.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Applications) ListForJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	items, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	if !status.Valid() {
		return application.Application{}, ErrInvalidInput
	}
	updated, err := u.apps.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}
	return updated, nil
}
