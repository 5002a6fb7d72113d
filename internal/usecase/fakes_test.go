package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"prison-jobs/internal/domain/application"
	"prison-jobs/internal/domain/job"
	"prison-jobs/internal/domain/questionnaire"
	"prison-jobs/internal/domain/resume"
	"prison-jobs/internal/domain/user"
	"prison-jobs/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]user.User
	err   error
	added int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uuid.UUID]user.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, it := range f.byID {
		if it.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	f.byID[u.ID] = u
	f.added++
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

type fakeJobRepo struct {
	mu          sync.Mutex
	jobs        []job.Job
	searchCalls int
	lastFilter  repository.JobSearchFilter
	err         error
}

func (f *fakeJobRepo) add(j job.Job) job.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC().Add(time.Duration(len(f.jobs)) * time.Second)
	}
	f.jobs = append(f.jobs, j)
	return j
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	if f.err != nil {
		return job.Job{}, f.err
	}
	return f.add(j), nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return job.Job{}, f.err
	}
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (f *fakeJobRepo) Search(_ context.Context, flt repository.JobSearchFilter) ([]job.Job, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	f.lastFilter = flt
	if f.err != nil {
		return nil, 0, f.err
	}

	matched := make([]job.Job, 0)
	for _, j := range f.jobs {
		if flt.Status != "" && j.Status != flt.Status {
			continue
		}
		if flt.Category != "" && j.Category != flt.Category {
			continue
		}
		if flt.Location != "" && (j.Location == nil || !strings.Contains(strings.ToLower(*j.Location), strings.ToLower(flt.Location))) {
			continue
		}
		if len(flt.TitleVariants) > 0 && !titleMatches(j.Title, flt.TitleVariants) {
			continue
		}
		matched = append(matched, j)
	}
	sort.SliceStable(matched, func(a, b int) bool { return matched[a].CreatedAt.After(matched[b].CreatedAt) })

	total := len(matched)
	start := min(flt.Offset, total)
	end := min(start+flt.Limit, total)
	return matched[start:end], total, nil
}

func titleMatches(title string, variants []string) bool {
	title = strings.ToLower(title)
	for _, v := range variants {
		if strings.Contains(title, v) {
			return true
		}
	}
	return false
}

func (f *fakeJobRepo) ListByStatus(ctx context.Context, status job.Status, limit, offset int) ([]job.Job, error) {
	all, err := f.ListAllByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	start := min(offset, len(all))
	end := min(start+limit, len(all))
	return all[start:end], nil
}

func (f *fakeJobRepo) ListAllByStatus(_ context.Context, status job.Status) ([]job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]job.Job, 0)
	for _, j := range f.jobs {
		if j.Status == status {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) UpdateStatus(_ context.Context, id uuid.UUID, status job.Status) (job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return job.Job{}, f.err
	}
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			f.jobs[i].Status = status
			return f.jobs[i], nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps []application.Application
	err  error
}

func (f *fakeApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return application.Application{}, f.err
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()
	f.apps = append(f.apps, a)
	return a, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return application.Application{}, application.ErrNotFound
}

func (f *fakeApplicationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]application.Application, error) {
	return f.filter(func(a application.Application) bool { return a.UserID == userID }), nil
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return f.filter(func(a application.Application) bool { return a.JobID == jobID }), nil
}

func (f *fakeApplicationRepo) filter(keep func(application.Application) bool) []application.Application {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]application.Application, 0)
	for _, a := range f.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].Status = status
			return f.apps[i], nil
		}
	}
	return application.Application{}, application.ErrNotFound
}

type fakeQuestionnaireRepo struct {
	mu      sync.Mutex
	byUser  map[uuid.UUID]questionnaire.Response
	upserts int
	err     error
}

func newFakeQuestionnaireRepo() *fakeQuestionnaireRepo {
	return &fakeQuestionnaireRepo{byUser: map[uuid.UUID]questionnaire.Response{}}
}

func (f *fakeQuestionnaireRepo) Upsert(_ context.Context, userID uuid.UUID, answers questionnaire.AnswerSet) (questionnaire.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return questionnaire.Response{}, f.err
	}
	f.upserts++
	resp, ok := f.byUser[userID]
	if !ok {
		resp = questionnaire.Response{ID: uuid.New(), UserID: userID, CreatedAt: time.Now().UTC()}
	}
	resp.Answers = answers.Clone()
	resp.UpdatedAt = time.Now().UTC()
	f.byUser[userID] = resp
	return resp, nil
}

func (f *fakeQuestionnaireRepo) GetByUserID(_ context.Context, userID uuid.UUID) (questionnaire.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return questionnaire.Response{}, f.err
	}
	resp, ok := f.byUser[userID]
	if !ok {
		return questionnaire.Response{}, questionnaire.ErrNotFound
	}
	return resp, nil
}

type fakeResumeRepo struct {
	byUser map[uuid.UUID]resume.Data
	err    error
}

func (f *fakeResumeRepo) Upsert(_ context.Context, d resume.Data) (resume.Data, error) {
	if f.err != nil {
		return resume.Data{}, f.err
	}
	if f.byUser == nil {
		f.byUser = map[uuid.UUID]resume.Data{}
	}
	d.ID = uuid.New()
	f.byUser[d.UserID] = d
	return d, nil
}

func (f *fakeResumeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (resume.Data, error) {
	if f.err != nil {
		return resume.Data{}, f.err
	}
	d, ok := f.byUser[userID]
	if !ok {
		return resume.Data{}, resume.ErrNotFound
	}
	return d, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeNotifier) NotifyJobsUpdated(j job.Job, source string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, j.ID.String()+":"+source)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}
