package api

import (
	"github.com/quietrook/tally/internal/models"
	"github.com/quietrook/tally/internal/services"
)

const dateLayout = "2006-01-02"

type habitResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Emoji         string `json:"emoji"`
	CurrentStreak int    `json:"current_streak"`
	CreatedAt     string `json:"created_at"`
}

type completionResponse struct {
	ID            uint   `json:"id"`
	HabitID       uint   `json:"habit_id"`
	CompletedDate string `json:"completed_date"`
}

// Dates loaded from the store may carry a different zone representation of
// the same instant, so they are re-anchored to the server location before
// being formatted for the wire.
func (handler *Handler) buildHabitResponse(habit models.Habit, currentStreak int) habitResponse {
	return habitResponse{
		ID:            habit.ID,
		Name:          habit.Name,
		Emoji:         habit.Emoji,
		CurrentStreak: currentStreak,
		CreatedAt:     services.DateAtLocation(habit.CreatedAt, handler.location).Format(dateLayout),
	}
}

func (handler *Handler) buildCompletionResponse(completion models.Completion) completionResponse {
	return completionResponse{
		ID:            completion.ID,
		HabitID:       completion.HabitID,
		CompletedDate: services.DateAtLocation(completion.CompletedDate, handler.location).Format(dateLayout),
	}
}
