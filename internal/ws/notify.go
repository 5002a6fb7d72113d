package ws

import (
	"encoding/json"
	"time"

	"prison-jobs/internal/domain/job"

	"go.uber.org/zap"
)

const EventJobsUpdated = "jobs_updated"

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

// Notifier pushes job events to every connected client of a hub.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) NotifyJobsUpdated(j job.Job, source string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      EventJobsUpdated,
		JobID:     j.ID.String(),
		Title:     j.Title,
		Category:  j.Category,
		Source:    source,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		n.hub.logger.Warn("ws event encode failed", zap.Error(err))
		return
	}

	n.hub.Broadcast(b)
}
