package models

import "time"

type Completion struct {
	ID            uint      `gorm:"primaryKey"`
	HabitID       uint      `gorm:"not null;uniqueIndex:uidx_habit_day"`
	CompletedDate time.Time `gorm:"type:date;not null;uniqueIndex:uidx_habit_day"`
}
