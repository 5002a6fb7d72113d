package dto

import (
	"time"

	"prison-jobs/internal/domain/job"
	"prison-jobs/internal/pkg/response"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Title        string  `json:"title" validate:"required,max=255"`
	Category     string  `json:"category" validate:"required,max=100"`
	Description  string  `json:"description" validate:"required"`
	Requirements *string `json:"requirements"`
	Salary       *string `json:"salary" validate:"omitempty,max=100"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type JobResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	Requirements *string    `json:"requirements"`
	Salary       *string    `json:"salary"`
	Location     *string    `json:"location"`
	PostedBy     *uuid.UUID `json:"posted_by"`
	PostedByName *string    `json:"posted_by_name,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type JobSearchResponse struct {
	Jobs       []JobResponse       `json:"jobs"`
	Pagination response.Pagination `json:"pagination"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Category:     j.Category,
		Description:  j.Description,
		Requirements: j.Requirements,
		Salary:       j.Salary,
		Location:     j.Location,
		PostedBy:     j.PostedBy,
		PostedByName: j.PostedByName,
		Status:       string(j.Status),
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

func NewJobResponses(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, NewJobResponse(j))
	}
	return out
}
