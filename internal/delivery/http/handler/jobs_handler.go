package handler

import (
	"errors"

	"prison-jobs/internal/delivery/http/dto"
	"prison-jobs/internal/delivery/http/middleware"
	"prison-jobs/internal/domain/job"
	"prison-jobs/internal/domain/user"
	"prison-jobs/internal/pkg/response"
	"prison-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

// RegisterRoutes mounts the job routes on r, which is expected to be the
// /jobs group. Static paths go first so they are not taken for an :id.
func (h *JobsHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
	r.Get("/pending", auth, middleware.RequireRoles(user.RoleAdmin), h.ListPending)
	r.Post("/", auth, middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin), h.Create)
	r.Get("/:id", h.Get)
	r.Patch("/:id/status", auth, middleware.RequireRoles(user.RoleAdmin), h.UpdateStatus)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := parseQueryIntStrict(c, "limit", 10)
	if err != nil {
		return err
	}

	res, err := h.uc.Search(c.Context(), usecase.JobSearchParams{
		Title:    c.Query("title"),
		Category: c.Query("category"),
		Location: c.Query("location"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	data := dto.JobSearchResponse{
		Jobs:       dto.NewJobResponses(res.Items),
		Pagination: response.NewPagination(res.Total, res.Page, res.Limit),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "Job not found")
	if err != nil {
		return err
	}

	j, err := h.uc.GetApproved(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), userID, middleware.Role(c), usecase.CreateJobInput{
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Location:     req.Location,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(created))
}

func (h *JobsHandler) ListPending(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := parseQueryIntStrict(c, "limit", 50)
	if err != nil {
		return err
	}

	items, err := h.uc.ListPending(c.Context(), page, limit)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(items))
}

func (h *JobsHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parseIDParam(c, "Job not found")
	if err != nil {
		return err
	}

	var req dto.UpdateJobStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateStatus(c.Context(), id, job.Status(req.Status))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Access denied. Insufficient permissions", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return internalError(err)
	}
}
