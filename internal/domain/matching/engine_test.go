package matching

import (
	"testing"

	"prison-jobs/internal/domain/job"
	"prison-jobs/internal/domain/questionnaire"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(questionnaire.Default())
}

func approvedJob(category string) Job {
	return Job{ID: uuid.New(), Title: category + " role", Category: category, Status: job.StatusApproved}
}

func securityAnswers() questionnaire.AnswerSet {
	return questionnaire.AnswerSet{
		questionnaire.QuestionLegalRightToWork:   questionnaire.Bool(true),
		questionnaire.QuestionBackgroundCheck:    questionnaire.Bool(true),
		questionnaire.QuestionCriminalOffense:    questionnaire.Bool(false),
		questionnaire.QuestionSecureEnvironment:  questionnaire.Bool(true),
		questionnaire.QuestionSecurityExperience: questionnaire.Bool(true),
		questionnaire.QuestionJobInterests:       questionnaire.Choices("Security / Law Enforcement"),
	}
}

// countScored counts the non-multiselect questions of the given sections.
func countScored(t *testing.T, sectionIDs ...string) int {
	t.Helper()
	q := questionnaire.Default()
	n := 0
	for _, id := range sectionIDs {
		s, ok := q.Section(id)
		require.True(t, ok, "section %s", id)
		for _, qu := range s.Questions {
			if qu.Kind != questionnaire.KindMultiSelect {
				n++
			}
		}
	}
	return n
}

func TestEngine_SecurityScenario(t *testing.T) {
	e := newTestEngine()

	res := e.ComputeMatches(securityAnswers(), []Job{approvedJob("Security")})
	require.Len(t, res, 1)

	total := countScored(t,
		questionnaire.SectionSecurityLawEnforcement,
		questionnaire.SectionPhysicalCapability,
		questionnaire.SectionGeneralEligibility,
		questionnaire.SectionSoftSkills,
	)
	require.Equal(t, 18, total)

	r := res[0]
	assert.Equal(t, total, r.TotalQuestions)
	assert.Equal(t, 4, r.Breakdown.General)
	assert.Equal(t, 2, r.Breakdown.Skills)
	assert.Equal(t, 3, r.Breakdown.Preference)
	assert.Equal(t, 5, r.AnsweredCorrectly)
	// round(9 / 21 * 100)
	assert.Equal(t, 43, r.MatchScore)
}

func TestEngine_UnknownCategoryUsesAllMappedSections(t *testing.T) {
	e := newTestEngine()

	r := e.Score(questionnaire.AnswerSet{}, approvedJob("Management"))

	want := countScored(t,
		questionnaire.SectionSecurityLawEnforcement,
		questionnaire.SectionPhysicalCapability,
		questionnaire.SectionMedicalQualifications,
		questionnaire.SectionAdministrativeOffice,
		questionnaire.SectionFoodService,
		questionnaire.SectionCleaningMaintenance,
		questionnaire.SectionTransportLogistics,
		questionnaire.SectionEmergencyResponse,
		questionnaire.SectionCanineOutdoor,
		questionnaire.SectionGeneralEligibility,
		questionnaire.SectionSoftSkills,
	)
	assert.Equal(t, 46, want)
	assert.Equal(t, want, r.TotalQuestions)
	assert.Equal(t, 0, r.MatchScore)
}

func TestEngine_RelevantSections(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{
			name:     "single keyword",
			category: "Food Service",
			want:     []string{questionnaire.SectionFoodService, questionnaire.SectionGeneralEligibility, questionnaire.SectionSoftSkills},
		},
		{
			name:     "case insensitive substring",
			category: "night SECURITY officer",
			want: []string{
				questionnaire.SectionSecurityLawEnforcement,
				questionnaire.SectionPhysicalCapability,
				questionnaire.SectionGeneralEligibility,
				questionnaire.SectionSoftSkills,
			},
		},
		{
			name:     "overlapping keywords are deduplicated",
			category: "Canine Security",
			want: []string{
				questionnaire.SectionSecurityLawEnforcement,
				questionnaire.SectionPhysicalCapability,
				questionnaire.SectionCanineOutdoor,
				questionnaire.SectionGeneralEligibility,
				questionnaire.SectionSoftSkills,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.RelevantSections(tt.category))
		})
	}
}

func TestEngine_PreferenceStacks(t *testing.T) {
	e := newTestEngine()
	answers := questionnaire.AnswerSet{
		questionnaire.QuestionJobInterests: questionnaire.Choices("Security / Law Enforcement", "Emergency / Crisis Response"),
	}

	// Neither full label is a substring of the category; both match through a
	// slash-separated part ("security", "emergency").
	r := e.Score(answers, approvedJob("Emergency Response Security"))
	assert.Equal(t, 6, r.Breakdown.Preference)

	r = e.Score(answers, approvedJob("Food Service"))
	assert.Equal(t, 0, r.Breakdown.Preference)
}

func TestEngine_InterestLabelMatchesOnParts(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		category string
		label    string
		want     int
	}{
		{"Security", "Security / Law Enforcement", 3},
		{"Medical", "Medical / Healthcare", 3},
		{"Logistics / Transport", "Transport", 3},
		{"Transport", "Logistics / Transport", 3},
		{"Emergency Response", "Emergency / Crisis Response", 3},
		{"Food Service", "Security / Law Enforcement", 0},
		{"Security", " / ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.label, func(t *testing.T) {
			answers := questionnaire.AnswerSet{questionnaire.QuestionJobInterests: questionnaire.Choices(tt.label)}
			assert.Equal(t, tt.want, e.Score(answers, approvedJob(tt.category)).Breakdown.Preference)
		})
	}
}

func TestEngine_WeightedRulesDependOnCategory(t *testing.T) {
	e := newTestEngine()
	answers := questionnaire.AnswerSet{
		questionnaire.QuestionMedicalQualification: questionnaire.Bool(true),
		questionnaire.QuestionSecurityExperience:   questionnaire.Bool(true),
	}

	medical := e.Score(answers, approvedJob("Medical"))
	assert.Equal(t, 2, medical.Breakdown.Skills)

	// security_experience is scored for canine jobs, but only by the generic rule.
	canine := e.Score(answers, approvedJob("Canine"))
	assert.Equal(t, 1, canine.Breakdown.Skills)

	// unknown category covers both sections without the category bonus.
	other := e.Score(answers, approvedJob("Management"))
	assert.Equal(t, 2, other.Breakdown.Skills)
}

func TestEngine_ScoreIsNotClamped(t *testing.T) {
	e := newTestEngine()
	answers := questionnaire.AnswerSet{
		questionnaire.QuestionJobInterests: questionnaire.Choices(
			"Security / Law Enforcement",
			"Medical / Healthcare",
			"Emergency / Crisis Response",
			"Food Service",
			"Logistics / Transport",
		),
	}
	for _, qu := range questionnaire.Default().Flatten() {
		if qu.Kind == questionnaire.KindBoolean {
			answers[qu.ID] = questionnaire.Bool(true)
		}
	}
	answers[questionnaire.QuestionCriminalOffense] = questionnaire.Bool(false)

	r := e.Score(answers, approvedJob("Security Medical"))
	assert.Greater(t, r.MatchScore, 100)
}

func TestEngine_FiltersUnapprovedJobs(t *testing.T) {
	e := newTestEngine()
	pending := approvedJob("Security")
	pending.Status = job.StatusPending
	rejected := approvedJob("Medical")
	rejected.Status = job.StatusRejected
	ok := approvedJob("Canine")

	res := e.ComputeMatches(securityAnswers(), []Job{pending, rejected, ok})
	require.Len(t, res, 1)
	assert.Equal(t, ok.ID, res[0].JobID)
}

func TestEngine_EmptyJobs(t *testing.T) {
	e := newTestEngine()
	res := e.ComputeMatches(securityAnswers(), nil)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestEngine_OrderingAndStability(t *testing.T) {
	e := newTestEngine()

	a := approvedJob("Food Service")
	b := approvedJob("Security")
	c := approvedJob("Food Service")
	d := approvedJob("Food Service")

	res := e.ComputeMatches(securityAnswers(), []Job{a, b, c, d})
	require.Len(t, res, 4)
	assert.Equal(t, b.ID, res[0].JobID)
	assert.Equal(t, []uuid.UUID{a.ID, c.ID, d.ID}, []uuid.UUID{res[1].JobID, res[2].JobID, res[3].JobID})

	res = e.ComputeMatches(securityAnswers(), []Job{d, c, b, a})
	assert.Equal(t, []uuid.UUID{b.ID, d.ID, c.ID, a.ID}, []uuid.UUID{res[0].JobID, res[1].JobID, res[2].JobID, res[3].JobID})

	for i := 1; i < len(res); i++ {
		assert.GreaterOrEqual(t, res[i-1].MatchScore, res[i].MatchScore)
	}
}

func TestEngine_DeterministicAndIdempotent(t *testing.T) {
	e := newTestEngine()
	jobs := []Job{approvedJob("Security"), approvedJob("Medical"), approvedJob("Warden"), approvedJob("Logistics")}
	answers := securityAnswers()

	first := e.ComputeMatches(answers, jobs)
	second := e.ComputeMatches(answers, jobs)
	assert.Equal(t, first, second)
	assert.Equal(t, securityAnswers(), answers)

	other := NewEngine(questionnaire.Default())
	assert.Equal(t, first, other.ComputeMatches(answers, jobs))
}

func TestEngine_MonotonicInCorrectAnswers(t *testing.T) {
	e := newTestEngine()
	j := approvedJob("Logistics")

	answers := questionnaire.AnswerSet{}
	prev := e.Score(answers, j)
	for _, sid := range e.RelevantSections(j.Category) {
		s, _ := questionnaire.Default().Section(sid)
		for _, qu := range s.Questions {
			if qu.Kind != questionnaire.KindBoolean {
				continue
			}
			if qu.ID == questionnaire.QuestionCriminalOffense {
				answers[qu.ID] = questionnaire.Bool(false)
			} else {
				answers[qu.ID] = questionnaire.Bool(true)
			}
			cur := e.Score(answers, j)
			require.Greater(t, cur.AnsweredCorrectly, prev.AnsweredCorrectly)
			require.GreaterOrEqual(t, cur.MatchScore, prev.MatchScore)
			prev = cur
		}
	}
}

func TestEngine_NonBooleanAnswersDoNotScore(t *testing.T) {
	e := newTestEngine()
	answers := questionnaire.AnswerSet{
		"team_independent":                     questionnaire.Choice("Team"),
		questionnaire.QuestionLegalRightToWork: questionnaire.Choice("yes"),
	}
	r := e.Score(answers, approvedJob("Food Service"))
	assert.Equal(t, 0, r.AnsweredCorrectly)
	assert.Equal(t, Breakdown{}, r.Breakdown)
}
