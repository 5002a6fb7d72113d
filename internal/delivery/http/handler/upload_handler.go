package handler

import (
	"errors"
	"path/filepath"

	"prison-jobs/internal/delivery/http/dto"
	"prison-jobs/internal/delivery/http/middleware"
	"prison-jobs/internal/pkg/response"
	"prison-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UploadHandler struct {
	uc usecase.UploadUsecase
}

func NewUploadHandler(uc usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

func (h *UploadHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/cv", auth, h.UploadCV)
	r.Get("/:filename", auth, h.Download)
}

func (h *UploadHandler) UploadCV(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
	}

	f, err := fh.Open()
	if err != nil {
		return internalError(err)
	}
	defer f.Close()

	out, err := h.uc.UploadCV(c.Context(), fh.Filename, fh.Size, f)
	if err != nil {
		return mapUploadUsecaseError(err)
	}

	data := dto.UploadResponse{
		FileID:       out.FileName,
		FileURL:      out.FileURL,
		OriginalName: out.OriginalName,
		Size:         out.Size,
	}
	return response.Success(c, fiber.StatusOK, "File uploaded successfully", data)
}

func (h *UploadHandler) Download(c fiber.Ctx) error {
	name := c.Params("filename")
	f, info, err := h.uc.Open(name)
	if err != nil {
		return mapUploadUsecaseError(err)
	}

	c.Type(filepath.Ext(name))
	// The response stream closes f once the body is written.
	return c.SendStream(f, int(info.Size()))
}

func mapUploadUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Only PDF and Word documents are allowed", nil, err)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", nil, err)
	case errors.Is(err, usecase.ErrFileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "File not found", nil, err)
	default:
		return internalError(err)
	}
}
