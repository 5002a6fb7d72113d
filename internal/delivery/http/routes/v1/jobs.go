package v1

import (
	"prison-jobs/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobsHandler *handler.JobsHandler, applicationHandler *handler.ApplicationHandler, auth fiber.Handler) {
	if r == nil {
		return
	}
	if jobsHandler == nil {
		return
	}

	jobs := r.Group("/jobs")
	jobsHandler.RegisterRoutes(jobs, auth)
	if applicationHandler != nil {
		applicationHandler.RegisterRoutes(jobs, r.Group("/applications"), auth)
	}
}
