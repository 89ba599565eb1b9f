package db

import (
	"errors"

	"github.com/quietrook/tally/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) List() ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Order("id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByID(habitID uint) (models.Habit, error) {
	var habit models.Habit
	if err := repo.database.First(&habit, habitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Habit{}, ErrHabitNotFound
		}
		return models.Habit{}, err
	}
	return habit, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

// UpdateNameEmoji overwrites the mutable fields of a habit. The id and
// created_at columns never change after creation.
func (repo *HabitRepository) UpdateNameEmoji(habitID uint, name string, emoji string) (models.Habit, error) {
	var habit models.Habit
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&habit, habitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHabitNotFound
			}
			return err
		}

		habit.Name = name
		habit.Emoji = emoji
		return tx.Model(&habit).Select("name", "emoji").Updates(map[string]any{
			"name":  name,
			"emoji": emoji,
		}).Error
	})
	if err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Delete removes a habit and every completion referencing it in one
// transaction, so no observer can see an orphaned completion.
func (repo *HabitRepository) Delete(habitID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var habit models.Habit
		if err := tx.First(&habit, habitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHabitNotFound
			}
			return err
		}

		if err := tx.Where("habit_id = ?", habitID).Delete(&models.Completion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&habit).Error
	})
}
