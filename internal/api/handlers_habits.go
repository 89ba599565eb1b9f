package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quietrook/tally/internal/models"
	"github.com/quietrook/tally/internal/services"
)

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	habits, err := handler.repositories.Habits.List()
	if err != nil {
		return storeAPIError(c, err)
	}

	today := handler.today()
	responses := make([]habitResponse, 0, len(habits))
	for _, habit := range habits {
		streak, err := handler.currentStreakFor(habit.ID, today)
		if err != nil {
			return storeAPIError(c, err)
		}
		responses = append(responses, handler.buildHabitResponse(habit, streak))
	}

	return c.JSON(responses)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	payload, err := parseHabitPayload(c)
	if err != nil {
		return habitPayloadAPIError(c, err)
	}

	habit := models.Habit{
		Name:      payload.Name,
		Emoji:     payload.Emoji,
		CreatedAt: services.DateAtLocation(time.Now(), handler.location),
	}
	if err := handler.repositories.Habits.Create(&habit); err != nil {
		return storeAPIError(c, err)
	}

	// A habit that was just created has no completions yet.
	return c.JSON(handler.buildHabitResponse(habit, 0))
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	habitID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}
	payload, err := parseHabitPayload(c)
	if err != nil {
		return habitPayloadAPIError(c, err)
	}

	habit, err := handler.repositories.Habits.UpdateNameEmoji(habitID, payload.Name, payload.Emoji)
	if err != nil {
		return storeAPIError(c, err)
	}

	streak, err := handler.currentStreakFor(habit.ID, handler.today())
	if err != nil {
		return storeAPIError(c, err)
	}
	return c.JSON(handler.buildHabitResponse(habit, streak))
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	habitID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	if err := handler.repositories.Habits.Delete(habitID); err != nil {
		return storeAPIError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Habit deleted successfully"})
}

func (handler *Handler) currentStreakFor(habitID uint, today time.Time) (int, error) {
	dates, err := handler.repositories.Completions.ListDatesByHabit(habitID)
	if err != nil {
		return 0, err
	}
	for i, date := range dates {
		dates[i] = services.DateAtLocation(date, handler.location)
	}
	return services.CurrentStreak(dates, services.DateAtLocation(today, handler.location)), nil
}
