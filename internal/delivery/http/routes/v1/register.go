package v1

import (
	"prison-jobs/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth          *handler.AuthHandler
	Jobs          *handler.JobsHandler
	Applications  *handler.ApplicationHandler
	Questionnaire *handler.QuestionnaireHandler
	Uploads       *handler.UploadHandler
	Users         *handler.UserHandler
}

// Register mounts every v1 route on r. auth validates the bearer access
// token and is attached per route.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	RegisterUsers(r, h.Auth, h.Users, auth)
	RegisterJobs(r, h.Jobs, h.Applications, auth)

	if h.Questionnaire != nil {
		h.Questionnaire.RegisterRoutes(r.Group("/questionnaire"), auth)
	}
	if h.Uploads != nil {
		h.Uploads.RegisterRoutes(r.Group("/uploads"), auth)
	}
}
