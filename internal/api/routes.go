package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/health", handler.Health)

	habits := api.Group("/habits")
	habits.Get("", handler.GetHabits)
	habits.Post("", handler.CreateHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)

	completions := api.Group("/completions")
	completions.Get("", handler.GetCompletions)
	completions.Post("", handler.CreateCompletion)
	completions.Delete("/:id", handler.DeleteCompletion)
}
