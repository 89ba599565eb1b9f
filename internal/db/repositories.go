package db

import "gorm.io/gorm"

type Repositories struct {
	Habits      *HabitRepository
	Completions *CompletionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Habits:      NewHabitRepository(database),
		Completions: NewCompletionRepository(database),
	}
}
