package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quietrook/tally/internal/models"
)

var errNameRequired = errors.New("name is required")

func parseHabitPayload(c *fiber.Ctx) (habitPayload, error) {
	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return habitPayload{}, err
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Emoji = strings.TrimSpace(payload.Emoji)
	if payload.Name == "" {
		return habitPayload{}, errNameRequired
	}
	if payload.Emoji == "" {
		payload.Emoji = models.DefaultEmoji
	}

	return payload, nil
}

func parseCompletionPayload(c *fiber.Ctx, location *time.Location) (uint, time.Time, error) {
	payload := completionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return 0, time.Time{}, err
	}
	if payload.HabitID == 0 {
		return 0, time.Time{}, errors.New("habit_id is required")
	}

	day, err := parseDayValue(payload.CompletedDate, location)
	if err != nil {
		return 0, time.Time{}, err
	}
	return payload.HabitID, day, nil
}

func parseDayValue(raw string, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("completed_date is required")
	}
	parsed, err := time.ParseInLocation(dateLayout, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}
