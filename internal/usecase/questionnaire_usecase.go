package usecase

import (
	"context"
	"errors"

	"prison-jobs/internal/domain/job"
	"prison-jobs/internal/domain/matching"
	"prison-jobs/internal/domain/questionnaire"
	"prison-jobs/internal/metrics"
	"prison-jobs/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrAnswersNotFound = errors.New("questionnaire response not found")

type QuestionnaireDefinition struct {
	Sections  []questionnaire.Section
	Questions []questionnaire.FlatQuestion
}

type QuestionnaireUsecase interface {
	Definition() QuestionnaireDefinition
	Submit(ctx context.Context, userID uuid.UUID, answers questionnaire.AnswerSet) (questionnaire.Response, error)
	GetMine(ctx context.Context, userID uuid.UUID) (questionnaire.Response, error)
	Results(ctx context.Context, userID uuid.UUID) ([]matching.Result, error)
}

type Questionnaire struct {
	def       *questionnaire.Questionnaire
	engine    *matching.Engine
	responses repository.QuestionnaireRepository
	jobs      repository.JobRepository
	logger    *zap.Logger
}

func NewQuestionnaireUsecase(def *questionnaire.Questionnaire, engine *matching.Engine, responses repository.QuestionnaireRepository, jobs repository.JobRepository, logger *zap.Logger) *Questionnaire {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Questionnaire{def: def, engine: engine, responses: responses, jobs: jobs, logger: logger}
}

func (u *Questionnaire) Definition() QuestionnaireDefinition {
	return QuestionnaireDefinition{
		Sections:  u.def.Sections(),
		Questions: u.def.Flatten(),
	}
}

// Submit validates answers and replaces whatever the user stored before.
// Validation failures are returned as *questionnaire.ValidationError and
// nothing is written.
func (u *Questionnaire) Submit(ctx context.Context, userID uuid.UUID, answers questionnaire.AnswerSet) (questionnaire.Response, error) {
	if userID == uuid.Nil {
		return questionnaire.Response{}, ErrUnauthorized
	}
	if err := u.def.Validate(answers); err != nil {
		metrics.QuestionnaireSubmissions.WithLabelValues("invalid").Inc()
		return questionnaire.Response{}, err
	}

	resp, err := u.responses.Upsert(ctx, userID, answers)
	if err != nil {
		metrics.QuestionnaireSubmissions.WithLabelValues("error").Inc()
		u.logger.Error("questionnaire upsert failed", zap.String("user_id", userID.String()), zap.Error(err))
		return questionnaire.Response{}, ErrInternal
	}
	metrics.QuestionnaireSubmissions.WithLabelValues("stored").Inc()
	return resp, nil
}

func (u *Questionnaire) GetMine(ctx context.Context, userID uuid.UUID) (questionnaire.Response, error) {
	resp, err := u.responses.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, questionnaire.ErrNotFound) {
			return questionnaire.Response{}, ErrAnswersNotFound
		}
		return questionnaire.Response{}, ErrInternal
	}
	return resp, nil
}

// Results ranks every approved job against the stored answers of the user.
func (u *Questionnaire) Results(ctx context.Context, userID uuid.UUID) ([]matching.Result, error) {
	resp, err := u.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	approved, err := u.jobs.ListAllByStatus(ctx, job.StatusApproved)
	if err != nil {
		u.logger.Error("list approved jobs failed", zap.Error(err))
		return nil, ErrInternal
	}

	candidates := make([]matching.Job, 0, len(approved))
	for _, j := range approved {
		candidates = append(candidates, matching.Job{
			ID:          j.ID,
			Title:       j.Title,
			Category:    j.Category,
			Description: j.Description,
			Status:      j.Status,
		})
	}

	results := u.engine.ComputeMatches(resp.Answers, candidates)
	metrics.MatchComputations.Inc()
	metrics.MatchedJobs.Observe(float64(len(results)))
	return results, nil
}
