package questionnaire

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("questionnaire response not found")

// Response is the stored answer set of one user.
type Response struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Answers   AnswerSet
	CreatedAt time.Time
	UpdatedAt time.Time
}
