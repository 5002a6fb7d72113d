package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

type Job struct {
	ID           uuid.UUID
	Title        string
	Category     string
	Description  string
	Requirements *string
	Salary       *string
	Location     *string
	PostedBy     *uuid.UUID
	PostedByName *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
