package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application not found")

type Status string

const (
	StatusSubmitted    Status = "submitted"
	StatusReviewed     Status = "reviewed"
	StatusRejected     Status = "rejected"
	StatusInterviewing Status = "interviewing"
	StatusHired        Status = "hired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusReviewed, StatusRejected, StatusInterviewing, StatusHired:
		return true
	default:
		return false
	}
}

type Application struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	JobID         uuid.UUID
	JobTitle      string
	ApplicantName string
	CVURL         string
	CoverNote     *string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
