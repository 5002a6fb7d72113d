package dto

import (
	"encoding/json"
	"time"

	"prison-jobs/internal/domain/resume"

	"github.com/google/uuid"
)

type ResumeRequest struct {
	Skills     []string        `json:"skills" validate:"max=100,dive,max=100"`
	Experience *string         `json:"experience"`
	ParsedData json.RawMessage `json:"parsed_data"`
}

type ResumeResponse struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Skills     []string        `json:"skills"`
	Experience *string         `json:"experience"`
	ParsedData json.RawMessage `json:"parsed_data"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewResumeResponse(d resume.Data) ResumeResponse {
	skills := d.Skills
	if skills == nil {
		skills = []string{}
	}
	return ResumeResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		Skills:     skills,
		Experience: d.Experience,
		ParsedData: d.ParsedData,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
