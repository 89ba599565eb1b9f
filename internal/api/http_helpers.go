package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quietrook/tally/internal/db"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func habitPayloadAPIError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errNameRequired) {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	return apiError(c, fiber.StatusBadRequest, "invalid habit payload")
}

// storeAPIError maps the store's typed errors onto client statuses. Anything
// unrecognized is a storage failure and surfaces as a generic 500 so raw
// database detail never reaches the client.
func storeAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, db.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, "Habit not found")
	case errors.Is(err, db.ErrCompletionNotFound):
		return apiError(c, fiber.StatusNotFound, "Completion not found")
	case errors.Is(err, db.ErrDuplicateCompletion):
		return apiError(c, fiber.StatusBadRequest, "Completion already exists")
	default:
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
}
