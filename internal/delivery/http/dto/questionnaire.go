package dto

import (
	"encoding/json"
	"time"

	"prison-jobs/internal/domain/matching"
	"prison-jobs/internal/domain/questionnaire"

	"github.com/google/uuid"
)

type SubmitQuestionnaireRequest struct {
	Answers map[string]json.RawMessage `json:"answers" validate:"required"`
}

type QuestionsResponse struct {
	Sections  []questionnaire.Section      `json:"sections"`
	Questions []questionnaire.FlatQuestion `json:"questions"`
}

type QuestionnaireResponse struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"user_id"`
	Answers   questionnaire.AnswerSet `json:"answers"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

type MatchDetails struct {
	GeneralEligibility int `json:"general_eligibility"`
	SkillsMatch        int `json:"skills_match"`
	PreferenceMatch    int `json:"preference_match"`
}

type MatchResponse struct {
	ID                uuid.UUID    `json:"id"`
	Title             string       `json:"title"`
	Category          string       `json:"category"`
	Description       string       `json:"description"`
	MatchScore        int          `json:"match_score"`
	MatchDetails      MatchDetails `json:"match_details"`
	TotalQuestions    int          `json:"total_questions"`
	AnsweredCorrectly int          `json:"answered_correctly"`
}

type MatchResultsResponse struct {
	Jobs []MatchResponse `json:"jobs"`
}

func NewQuestionnaireResponse(r questionnaire.Response) QuestionnaireResponse {
	return QuestionnaireResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Answers:   r.Answers,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewMatchResultsResponse(results []matching.Result) MatchResultsResponse {
	out := make([]MatchResponse, 0, len(results))
	for _, r := range results {
		out = append(out, MatchResponse{
			ID:          r.JobID,
			Title:       r.Title,
			Category:    r.Category,
			Description: r.Description,
			MatchScore:  r.MatchScore,
			MatchDetails: MatchDetails{
				GeneralEligibility: r.Breakdown.General,
				SkillsMatch:        r.Breakdown.Skills,
				PreferenceMatch:    r.Breakdown.Preference,
			},
			TotalQuestions:    r.TotalQuestions,
			AnsweredCorrectly: r.AnsweredCorrectly,
		})
	}
	return MatchResultsResponse{Jobs: out}
}
