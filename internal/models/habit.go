package models

import "time"

// DefaultEmoji is used when a habit is created without an explicit glyph.
const DefaultEmoji = "⭐"

type Habit struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Emoji     string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"type:date;not null"`
}
