package handler

import (
	"errors"

	"prison-jobs/internal/delivery/http/dto"
	"prison-jobs/internal/delivery/http/middleware"
	"prison-jobs/internal/domain/application"
	"prison-jobs/internal/domain/user"
	"prison-jobs/internal/pkg/response"
	"prison-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterRoutes mounts application routes under both the /jobs group and
// the /applications group.
func (h *ApplicationHandler) RegisterRoutes(jobs, applications fiber.Router, auth fiber.Handler) {
	if jobs != nil {
		jobs.Post("/apply", auth, middleware.RequireRoles(user.RoleJobSeeker), h.Apply)
		jobs.Get("/:id/applications", auth, middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin), h.ListForJob)
	}
	if applications != nil {
		applications.Get("/me", auth, middleware.RequireRoles(user.RoleJobSeeker), h.ListMine)
		applications.Patch("/:id/status", auth, middleware.RequireRoles(user.RoleRecruiter, user.RoleAdmin), h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Apply(c.Context(), userID, usecase.ApplyInput{
		JobID:     jobID,
		CVURL:     req.CVURL,
		CoverNote: req.CoverNote,
	})
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted successfully", dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListMine(c.Context(), userID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(items))
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	jobID, err := parseIDParam(c, "Job not found")
	if err != nil {
		return err
	}

	items, err := h.uc.ListForJob(c.Context(), jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(items))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parseIDParam(c, "Application not found")
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateStatus(c.Context(), id, application.Status(req.Status))
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(updated))
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found or not approved", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	default:
		return internalError(err)
	}
}
