package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"prison-jobs/internal/domain/job"
	"prison-jobs/internal/domain/user"
	"prison-jobs/internal/metrics"
	"prison-jobs/internal/repository"
	"prison-jobs/internal/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrJobNotFound = errors.New("job not found")

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
	defaultListLimit   = 50
	maxListLimit       = 200
	searchLockTTL      = 30 * time.Second
	searchLockWait     = 300 * time.Millisecond
)

type JobSearchParams struct {
	Title    string
	Category string
	Location string
	Page     int
	Limit    int
}

type JobSearchResult struct {
	Items []job.Job
	Total int
	Page  int
	Limit int
}

type CreateJobInput struct {
	Title        string
	Category     string
	Description  string
	Requirements *string
	Salary       *string
	Location     *string
}

// JobsNotifier is told about jobs that became publicly visible.
type JobsNotifier interface {
	NotifyJobsUpdated(j job.Job, source string)
}

type JobUsecase interface {
	Search(ctx context.Context, params JobSearchParams) (JobSearchResult, error)
	GetApproved(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, postedBy uuid.UUID, role user.Role, in CreateJobInput) (job.Job, error)
	ListPending(ctx context.Context, page, limit int) ([]job.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) (job.Job, error)
}

type Jobs struct {
	jobs     repository.JobRepository
	cache    SearchCache
	notifier JobsNotifier
	logger   *zap.Logger
	lockWait time.Duration
}

func NewJobUsecase(jobs repository.JobRepository, cache SearchCache, notifier JobsNotifier, logger *zap.Logger) *Jobs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Jobs{jobs: jobs, cache: cache, notifier: notifier, logger: logger, lockWait: searchLockWait}
}

func (u *Jobs) Search(ctx context.Context, params JobSearchParams) (JobSearchResult, error) {
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = defaultSearchLimit
	}
	if params.Page < 0 || params.Limit < 0 || params.Limit > maxSearchLimit {
		return JobSearchResult{}, ErrInvalidInput
	}
	params.Title = strings.TrimSpace(params.Title)
	params.Category = strings.TrimSpace(params.Category)
	params.Location = strings.TrimSpace(params.Location)

	cacheKey := JobsSearchCacheKey(params)
	lockKey := JobsSearchLockKey(cacheKey)

	if u.cache == nil {
		metrics.SearchCache.WithLabelValues("bypass").Inc()
	} else {
		var cached JobSearchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			metrics.SearchCache.WithLabelValues("hit").Inc()
			u.logger.Debug("job search cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
		metrics.SearchCache.WithLabelValues("miss").Inc()
	}

	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", searchLockTTL)
		if err == nil && ok {
			defer func() { _ = u.cache.Delete(ctx, lockKey) }()
		} else if err == nil && !ok {
			// Another request is filling this key; give it a moment.
			jitter := time.Duration(rand.IntN(201)) * time.Millisecond
			if err := sleepContext(ctx, u.lockWait+jitter); err != nil {
				return JobSearchResult{}, err
			}
			var cached JobSearchResult
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				metrics.SearchCache.WithLabelValues("hit").Inc()
				return cached, nil
			}
			u.logger.Debug("job search lock wait fallback", zap.String("key", lockKey))
		}
	}

	var variants []string
	if params.Title != "" {
		variants = search.ProcessQuery(params.Title).Variants
	}

	items, total, err := u.jobs.Search(ctx, repository.JobSearchFilter{
		Status:        job.StatusApproved,
		TitleVariants: variants,
		Category:      params.Category,
		Location:      params.Location,
		Limit:         params.Limit,
		Offset:        (params.Page - 1) * params.Limit,
	})
	if err != nil {
		u.logger.Error("job search failed", zap.Error(err))
		return JobSearchResult{}, ErrInternal
	}

	out := JobSearchResult{Items: items, Total: total, Page: params.Page, Limit: params.Limit}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err != nil {
			u.logger.Warn("job search cache set failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return out, nil
}

func (u *Jobs) GetApproved(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.Status != job.StatusApproved {
		return job.Job{}, ErrJobNotFound
	}
	return j, nil
}

// Create stores a new posting. Postings by admins are approved immediately,
// everything else waits in the pending queue.
func (u *Jobs) Create(ctx context.Context, postedBy uuid.UUID, role user.Role, in CreateJobInput) (job.Job, error) {
	if role != user.RoleRecruiter && role != user.RoleAdmin {
		return job.Job{}, ErrForbidden
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || in.Category == "" || in.Description == "" {
		return job.Job{}, ErrInvalidInput
	}

	status := job.StatusPending
	if role == user.RoleAdmin {
		status = job.StatusApproved
	}

	var poster *uuid.UUID
	if postedBy != uuid.Nil {
		poster = &postedBy
	}

	created, err := u.jobs.Create(ctx, job.Job{
		Title:        in.Title,
		Category:     in.Category,
		Description:  in.Description,
		Requirements: trimOptional(in.Requirements),
		Salary:       trimOptional(in.Salary),
		Location:     trimOptional(in.Location),
		PostedBy:     poster,
		Status:       status,
	})
	if err != nil {
		u.logger.Error("job create failed", zap.Error(err))
		return job.Job{}, ErrInternal
	}

	if created.Status == job.StatusApproved {
		u.publish(ctx, created, "created")
	}
	return created, nil
}

func (u *Jobs) ListPending(ctx context.Context, page, limit int) ([]job.Job, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	if page < 0 || limit < 0 || limit > maxListLimit {
		return nil, ErrInvalidInput
	}
	items, err := u.jobs.ListByStatus(ctx, job.StatusPending, limit, (page-1)*limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// UpdateStatus moves a job to approved or rejected. Any change drops the
// cached search pages since they only ever contain approved jobs.
func (u *Jobs) UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) (job.Job, error) {
	if status != job.StatusApproved && status != job.StatusRejected {
		return job.Job{}, ErrInvalidInput
	}

	updated, err := u.jobs.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		u.logger.Error("job status update failed", zap.String("job_id", id.String()), zap.Error(err))
		return job.Job{}, ErrInternal
	}

	if updated.Status == job.StatusApproved {
		u.publish(ctx, updated, "approved")
	} else {
		u.invalidateSearch(ctx)
	}
	return updated, nil
}

func (u *Jobs) publish(ctx context.Context, j job.Job, source string) {
	u.invalidateSearch(ctx)
	if u.notifier != nil {
		u.notifier.NotifyJobsUpdated(j, source)
	}
}

func (u *Jobs) invalidateSearch(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, jobsSearchPattern); err != nil {
		u.logger.Warn("job search cache invalidation failed", zap.Error(err))
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
