package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prison-jobs/internal/config"
	"prison-jobs/internal/delivery/http/handler"
	"prison-jobs/internal/delivery/http/middleware"
	"prison-jobs/internal/delivery/http/routes"
	v1 "prison-jobs/internal/delivery/http/routes/v1"
	"prison-jobs/internal/pkg/response"
	"prison-jobs/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

const (
	minBodyLimit = 4 << 20
	// bodyLimitSlack leaves room for multipart framing around an upload of
	// the configured maximum size.
	bodyLimitSlack = 1 << 20
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		BodyLimit:    bodyLimit(cfg.Upload.MaxBytes),
		ErrorHandler: fallbackErrorHandler,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects every dependency and builds the HTTP app. The returned
// cleanup closes what Bootstrap opened.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: c.Config.App.CORSAllowOrigins,
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
	}))
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var db, cachePinger handler.Pinger
	if c.DB != nil {
		db = c.DB
	}
	if c.Cache != nil {
		cachePinger = c.Cache
	}

	var wsHandler *ws.Handler
	if c.Hub != nil {
		wsHandler = ws.NewHandler(c.Hub, c.Config.App.CORSAllowOrigins, c.Logger)
	}

	h := v1.Handlers{
		Auth:          handler.NewAuthHandler(c.Auth, c.Users),
		Jobs:          handler.NewJobsHandler(c.Jobs),
		Applications:  handler.NewApplicationHandler(c.Applications),
		Questionnaire: handler.NewQuestionnaireHandler(c.Questionnaire),
		Uploads:       handler.NewUploadHandler(c.Uploads),
		Users:         handler.NewUserHandler(c.Users),
	}

	auth := middleware.NewAuthMiddleware(c.JWT).Middleware()
	routes.NewRegistry(handler.NewHealthHandler(db, cachePinger), wsHandler, h, auth).Register(app)
}

// fallbackErrorHandler covers errors raised before the middleware chain runs,
// such as an oversized body.
func fallbackErrorHandler(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code > 0 && fe.Code < 500 {
		status = fe.Code
	}
	return response.Error(c, status, response.DefaultMessage(status), nil)
}

func bodyLimit(maxUpload int64) int {
	limit := maxUpload + bodyLimitSlack
	if limit < minBodyLimit {
		return minBodyLimit
	}
	return int(limit)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
