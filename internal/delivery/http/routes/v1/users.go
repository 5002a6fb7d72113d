package v1

import (
	"prison-jobs/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterUsers(r fiber.Router, authHandler *handler.AuthHandler, userHandler *handler.UserHandler, auth fiber.Handler) {
	if r == nil {
		return
	}

	if authHandler != nil {
		authHandler.RegisterRoutes(r.Group("/auth"), auth)
	}
	if userHandler != nil {
		userHandler.RegisterRoutes(r.Group("/users"), auth)
	}
}
