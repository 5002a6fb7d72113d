package matching

import (
	"math"
	"sort"

	"prison-jobs/internal/domain/job"
	"prison-jobs/internal/domain/questionnaire"

	"github.com/google/uuid"
)

const preferenceWeight = 3

type Job struct {
	ID          uuid.UUID
	Title       string
	Category    string
	Description string
	Status      job.Status
}

type Breakdown struct {
	General    int
	Skills     int
	Preference int
}

func (b Breakdown) Total() int {
	return b.General + b.Skills + b.Preference
}

type Result struct {
	JobID             uuid.UUID
	Title             string
	Category          string
	Description       string
	MatchScore        int
	Breakdown         Breakdown
	TotalQuestions    int
	AnsweredCorrectly int
}

// Engine scores questionnaire answers against job categories. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	categories []CategoryRule
	rules      []rule
	scored     map[string][]string
}

func NewEngine(q *questionnaire.Questionnaire) *Engine {
	return NewEngineWithCategories(q, DefaultCategoryRules())
}

func NewEngineWithCategories(q *questionnaire.Questionnaire, categories []CategoryRule) *Engine {
	e := &Engine{
		categories: make([]CategoryRule, 0, len(categories)),
		rules:      defaultRules(),
		scored:     make(map[string][]string),
	}
	for _, c := range categories {
		e.categories = append(e.categories, CategoryRule{
			Keyword:  c.Keyword,
			Sections: append([]string(nil), c.Sections...),
		})
	}

	for _, s := range q.Sections() {
		ids := make([]string, 0, len(s.Questions))
		for _, qu := range s.Questions {
			if qu.Kind == questionnaire.KindMultiSelect {
				continue
			}
			ids = append(ids, qu.ID)
		}
		e.scored[s.ID] = ids
	}
	return e
}

// RelevantSections returns the deduplicated section ids scored for a category.
func (e *Engine) RelevantSections(category string) []string {
	return relevantSections(e.categories, category)
}

// ComputeMatches scores every approved job and returns them ordered by
// descending match score. Ties keep their input order.
func (e *Engine) ComputeMatches(answers questionnaire.AnswerSet, jobs []Job) []Result {
	out := make([]Result, 0, len(jobs))
	for _, j := range jobs {
		if j.Status != job.StatusApproved {
			continue
		}
		out = append(out, e.Score(answers, j))
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].MatchScore > out[k].MatchScore
	})
	return out
}

// Score computes the match of a single job regardless of its status.
func (e *Engine) Score(answers questionnaire.AnswerSet, j Job) Result {
	var b Breakdown
	totalQuestions := 0
	answered := 0

	for _, sid := range e.RelevantSections(j.Category) {
		for _, qid := range e.scored[sid] {
			totalQuestions++

			a, ok := answers.Get(qid)
			if !ok {
				continue
			}
			r, ok := firstMatch(e.rules, ruleInput{QuestionID: qid, Answer: a, Category: j.Category})
			if !ok {
				continue
			}
			answered++
			b.General += r.General
			b.Skills += r.Skills
		}
	}

	if a, ok := answers.Get(questionnaire.QuestionJobInterests); ok {
		for _, label := range a.Choices() {
			if interestMatches(j.Category, label) {
				b.Preference += preferenceWeight
			}
		}
	}

	maxScore := totalQuestions + preferenceWeight
	score := int(math.Round(float64(b.Total()) / float64(maxScore) * 100))

	return Result{
		JobID:             j.ID,
		Title:             j.Title,
		Category:          j.Category,
		Description:       j.Description,
		MatchScore:        score,
		Breakdown:         b,
		TotalQuestions:    totalQuestions,
		AnsweredCorrectly: answered,
	}
}
