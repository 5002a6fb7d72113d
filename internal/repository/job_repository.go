package repository

import (
	"context"
	"strconv"
	"strings"

	"prison-jobs/internal/database"
	"prison-jobs/internal/domain/job"

	"github.com/google/uuid"
)

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	Search(ctx context.Context, f JobSearchFilter) ([]job.Job, int, error)
	ListByStatus(ctx context.Context, status job.Status, limit, offset int) ([]job.Job, error)
	ListAllByStatus(ctx context.Context, status job.Status) ([]job.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) (job.Job, error)
}

// JobSearchFilter selects jobs of one status. Empty fields do not filter.
// TitleVariants are OR-ed substring matches against the title.
type JobSearchFilter struct {
	Status        job.Status
	TitleVariants []string
	Category      string
	Location      string
	Limit         int
	Offset        int
}

const jobSelect = `SELECT j.id, j.title, j.category, j.description, j.requirements, j.salary, j.location,
	j.posted_by, u.name, j.status, j.created_at, j.updated_at
 FROM jobs j
 LEFT JOIN users u ON u.id = j.posted_by`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, category, description, requirements, salary, location, posted_by, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		j.ID, j.Title, j.Category, j.Description, j.Requirements, j.Salary, j.Location, j.PostedBy, string(j.Status),
	)
	if err := row.Scan(&j.CreatedAt, &j.UpdatedAt); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if database.IsNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Search(ctx context.Context, f JobSearchFilter) ([]job.Job, int, error) {
	where, args := buildJobWhere(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs j`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []job.Job{}, 0, nil
	}

	limit, offset := clampPage(f.Limit, f.Offset, 10, 100)
	args = append(args, limit, offset)
	q := jobSelect + where +
		` ORDER BY j.created_at DESC, j.id ASC` +
		` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	out, err := r.queryJobs(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) ListByStatus(ctx context.Context, status job.Status, limit, offset int) ([]job.Job, error) {
	limit, offset = clampPage(limit, offset, 50, 200)
	return r.queryJobs(ctx,
		jobSelect+` WHERE j.status = $1 ORDER BY j.created_at DESC, j.id ASC LIMIT $2 OFFSET $3`,
		string(status), limit, offset,
	)
}

func (r *PostgresJobRepository) ListAllByStatus(ctx context.Context, status job.Status) ([]job.Job, error) {
	return r.queryJobs(ctx,
		jobSelect+` WHERE j.status = $1 ORDER BY j.created_at DESC, j.id ASC`,
		string(status),
	)
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) (job.Job, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return job.Job{}, err
	}
	if n == 0 {
		return job.Job{}, job.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresJobRepository) queryJobs(ctx context.Context, q string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func buildJobWhere(f JobSearchFilter) (string, []any) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 4+len(f.TitleVariants))
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Status != "" {
		conds = append(conds, "j.status = "+next(string(f.Status)))
	}

	titleConds := make([]string, 0, len(f.TitleVariants))
	for _, v := range f.TitleVariants {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		titleConds = append(titleConds, "j.title ILIKE "+next(containsPattern(v)))
	}
	if len(titleConds) > 0 {
		conds = append(conds, "("+strings.Join(titleConds, " OR ")+")")
	}

	if c := strings.TrimSpace(f.Category); c != "" {
		conds = append(conds, "j.category = "+next(c))
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		conds = append(conds, "j.location ILIKE "+next(containsPattern(l)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func clampPage(limit, offset, def, max int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var status string
	if err := row.Scan(
		&j.ID, &j.Title, &j.Category, &j.Description, &j.Requirements, &j.Salary, &j.Location,
		&j.PostedBy, &j.PostedByName, &status, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	return j, nil
}
