package app

import (
	"context"
	"errors"
	"time"

	"prison-jobs/internal/config"
	"prison-jobs/internal/database"
	dbpostgres "prison-jobs/internal/database/postgres"
	"prison-jobs/internal/domain/matching"
	"prison-jobs/internal/domain/questionnaire"
	"prison-jobs/internal/infrastructure/cache"
	"prison-jobs/internal/infrastructure/storage"
	"prison-jobs/internal/pkg/jwt"
	"prison-jobs/internal/repository"
	"prison-jobs/internal/usecase"
	ucauth "prison-jobs/internal/usecase/auth"
	"prison-jobs/internal/ws"

	"go.uber.org/zap"
)

// Container owns every long-lived dependency of the HTTP server.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    *dbpostgres.Pool
	Cache *cache.Redis
	Files *storage.FileStore
	Hub   *ws.Hub
	JWT   jwt.Service

	Auth          usecase.AuthUsecase
	Users         usecase.UserUsecase
	Jobs          usecase.JobUsecase
	Applications  usecase.ApplicationUsecase
	Questionnaire usecase.QuestionnaireUsecase
	Uploads       usecase.UploadUsecase
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	files, err := storage.NewLocal(cfg.Upload.Dir, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(connectCtx, cfg.Redis, logger),
		Files:  files,
		Hub:    ws.NewHub(logger),
		JWT:    jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn),
	}
	c.wireUsecases(db)

	return c, nil
}

func (c *Container) wireUsecases(db database.DB) {
	users := repository.NewPostgresUserRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	apps := repository.NewPostgresApplicationRepository(db)
	responses := repository.NewPostgresQuestionnaireRepository(db)
	resumes := repository.NewPostgresResumeRepository(db)

	def := questionnaire.Default()

	c.Auth = usecase.NewAuthUsecase(ucauth.NewService(users), users, c.JWT)
	c.Users = usecase.NewUserUsecase(users, resumes)
	c.Jobs = usecase.NewJobUsecase(jobs, c.Cache, ws.NewNotifier(c.Hub), c.Logger)
	c.Applications = usecase.NewApplicationUsecase(apps, jobs, c.Logger)
	c.Questionnaire = usecase.NewQuestionnaireUsecase(def, matching.NewEngine(def), responses, jobs, c.Logger)
	c.Uploads = usecase.NewUploadUsecase(c.Files, c.Config.Upload.MaxBytes, c.Logger)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
