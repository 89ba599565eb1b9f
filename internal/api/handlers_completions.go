package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quietrook/tally/internal/models"
)

func (handler *Handler) GetCompletions(c *fiber.Ctx) error {
	completions, err := handler.repositories.Completions.List()
	if err != nil {
		return storeAPIError(c, err)
	}

	responses := make([]completionResponse, 0, len(completions))
	for _, completion := range completions {
		responses = append(responses, handler.buildCompletionResponse(completion))
	}
	return c.JSON(responses)
}

func (handler *Handler) CreateCompletion(c *fiber.Ctx) error {
	habitID, day, err := parseCompletionPayload(c, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid completion payload")
	}

	completion := models.Completion{HabitID: habitID, CompletedDate: day}
	if err := handler.repositories.Completions.Create(&completion); err != nil {
		return storeAPIError(c, err)
	}

	return c.JSON(handler.buildCompletionResponse(completion))
}

func (handler *Handler) DeleteCompletion(c *fiber.Ctx) error {
	completionID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid completion id")
	}

	if err := handler.repositories.Completions.Delete(completionID); err != nil {
		return storeAPIError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Completion deleted successfully"})
}
