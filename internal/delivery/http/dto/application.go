package dto

import (
	"time"

	"prison-jobs/internal/domain/application"

	"github.com/google/uuid"
)

type ApplyRequest struct {
	JobID     string  `json:"job_id" validate:"required,uuid"`
	CVURL     string  `json:"cv_url" validate:"required,max=500"`
	CoverNote *string `json:"cover_note"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=submitted reviewed rejected interviewing hired"`
}

type ApplicationResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	JobID         uuid.UUID `json:"job_id"`
	JobTitle      string    `json:"job_title,omitempty"`
	ApplicantName string    `json:"applicant_name,omitempty"`
	CVURL         string    `json:"cv_url"`
	CoverNote     *string   `json:"cover_note"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		JobID:         a.JobID,
		JobTitle:      a.JobTitle,
		ApplicantName: a.ApplicantName,
		CVURL:         a.CVURL,
		CoverNote:     a.CoverNote,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func NewApplicationResponses(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
