package handler

import (
	"fireforge/internal/dto"
	"fireforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles diagnostic quiz HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GetCatalog handles GET /api/quiz/questions. The catalog is static, so this
// never fails.
func (h *QuizHandler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCatalog())
}

// SubmitQuiz handles POST /api/quiz/submissions. Errors flow to the
// centralized error handler.
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.QuizSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	response, err := h.service.SubmitQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// ListQuizResults handles GET /api/admin/quiz-results.
func (h *QuizHandler) ListQuizResults(c *fiber.Ctx) error {
	results, err := h.service.ListQuizResults(c.Context(), c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// UpdateQuizResultStatus handles PATCH /api/admin/quiz-results/:id/status.
func (h *QuizHandler) UpdateQuizResultStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.UpdateQuizResultStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
