package api

import (
	"time"

	"github.com/quietrook/tally/internal/db"
	"gorm.io/gorm"
)

type Handler struct {
	repositories *db.Repositories
	location     *time.Location
}

type habitPayload struct {
	Name  string `json:"name" form:"name"`
	Emoji string `json:"emoji" form:"emoji"`
}

type completionPayload struct {
	HabitID       uint   `json:"habit_id" form:"habit_id"`
	CompletedDate string `json:"completed_date" form:"completed_date"`
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		repositories: db.NewRepositories(database),
		location:     location,
	}
}

// today returns the current moment in the server location; streak
// computations truncate it to its calendar day.
func (handler *Handler) today() time.Time {
	return time.Now().In(handler.location)
}
