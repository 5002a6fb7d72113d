package resume

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resume data not found")

type Data struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Skills     []string
	Experience *string
	ParsedData json.RawMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
