package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/quietrook/tally/internal/models"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "tally-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	return NewRepositories(newTestDatabase(t))
}

func createTestHabit(t *testing.T, repos *Repositories, name string) models.Habit {
	t.Helper()

	habit := models.Habit{
		Name:      name,
		Emoji:     models.DefaultEmoji,
		CreatedAt: testDay(0),
	}
	if err := repos.Habits.Create(&habit); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	return habit
}

// testDay returns midnight UTC offset whole days from a fixed anchor date.
func testDay(offset int) time.Time {
	anchor := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	return anchor.AddDate(0, 0, offset)
}
