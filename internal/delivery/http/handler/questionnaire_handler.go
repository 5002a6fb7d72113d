package handler

import (
	"errors"
	"sort"

	"prison-jobs/internal/delivery/http/dto"
	"prison-jobs/internal/delivery/http/middleware"
	"prison-jobs/internal/domain/questionnaire"
	"prison-jobs/internal/domain/user"
	"prison-jobs/internal/pkg/response"
	"prison-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type QuestionnaireHandler struct {
	uc usecase.QuestionnaireUsecase
}

func NewQuestionnaireHandler(uc usecase.QuestionnaireUsecase) *QuestionnaireHandler {
	return &QuestionnaireHandler{uc: uc}
}

func (h *QuestionnaireHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	seeker := middleware.RequireRoles(user.RoleJobSeeker)
	r.Get("/questions", h.Questions)
	r.Post("/submit", auth, seeker, h.Submit)
	r.Get("/me", auth, seeker, h.Mine)
	r.Get("/results", auth, seeker, h.Results)
}

func (h *QuestionnaireHandler) Questions(c fiber.Ctx) error {
	def := h.uc.Definition()
	data := dto.QuestionsResponse{Sections: def.Sections, Questions: def.Questions}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *QuestionnaireHandler) Submit(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.SubmitQuestionnaireRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Answers == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Answers are required", nil, nil)
	}

	answers, err := decodeAnswers(req)
	if err != nil {
		return mapQuestionnaireUsecaseError(err)
	}

	resp, err := h.uc.Submit(c.Context(), userID, answers)
	if err != nil {
		return mapQuestionnaireUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Questionnaire answers submitted successfully", dto.NewQuestionnaireResponse(resp))
}

func (h *QuestionnaireHandler) Mine(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.uc.GetMine(c.Context(), userID)
	if err != nil {
		return mapQuestionnaireUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewQuestionnaireResponse(resp))
}

func (h *QuestionnaireHandler) Results(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	results, err := h.uc.Results(c.Context(), userID)
	if err != nil {
		return mapQuestionnaireUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultsResponse(results))
}

// decodeAnswers decodes each answer on its own so that a value of the wrong
// JSON type is reported against its question id.
func decodeAnswers(req dto.SubmitQuestionnaireRequest) (questionnaire.AnswerSet, error) {
	ids := make([]string, 0, len(req.Answers))
	for id := range req.Answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make(questionnaire.AnswerSet, len(req.Answers))
	var fields []questionnaire.FieldError
	for _, id := range ids {
		var a questionnaire.Answer
		if err := a.UnmarshalJSON(req.Answers[id]); err != nil {
			fields = append(fields, questionnaire.FieldError{QuestionID: id, Message: "unsupported answer value"})
			continue
		}
		out[id] = a
	}
	if len(fields) > 0 {
		return nil, &questionnaire.ValidationError{Fields: fields}
	}
	return out, nil
}

func mapQuestionnaireUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *questionnaire.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid questionnaire answers", verr.Fields, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrAnswersNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No questionnaire responses found", nil, err)
	default:
		return internalError(err)
	}
}
