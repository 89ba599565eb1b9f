package db

import (
	"errors"
	"time"

	"github.com/quietrook/tally/internal/models"
	"gorm.io/gorm"
)

type CompletionRepository struct {
	database *gorm.DB
}

func NewCompletionRepository(database *gorm.DB) *CompletionRepository {
	return &CompletionRepository{database: database}
}

func (repo *CompletionRepository) List() ([]models.Completion, error) {
	completions := make([]models.Completion, 0)
	if err := repo.database.Order("id ASC").Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// ListDatesByHabit returns one habit's completion dates, oldest first. This
// is the feed for the streak computation.
func (repo *CompletionRepository) ListDatesByHabit(habitID uint) ([]time.Time, error) {
	completions := make([]models.Completion, 0)
	if err := repo.database.
		Select("completed_date").
		Where("habit_id = ?", habitID).
		Order("completed_date ASC").
		Find(&completions).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(completions))
	for _, completion := range completions {
		dates = append(dates, completion.CompletedDate)
	}
	return dates, nil
}

func (repo *CompletionRepository) FindByID(completionID uint) (models.Completion, error) {
	var completion models.Completion
	if err := repo.database.First(&completion, completionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Completion{}, ErrCompletionNotFound
		}
		return models.Completion{}, err
	}
	return completion, nil
}

// Create inserts a completion after verifying the habit exists and the day
// is not already recorded. The checks and the insert run in one transaction,
// and the unique (habit_id, completed_date) index guarantees at most one row
// per day even if two writers race past the duplicate check.
func (repo *CompletionRepository) Create(completion *models.Completion) error {
	dayStart := completion.CompletedDate
	dayEnd := dayStart.AddDate(0, 0, 1)

	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var habitCount int64
		if err := tx.Model(&models.Habit{}).Where("id = ?", completion.HabitID).Count(&habitCount).Error; err != nil {
			return err
		}
		if habitCount == 0 {
			return ErrHabitNotFound
		}

		var existing int64
		if err := tx.Model(&models.Completion{}).
			Where("habit_id = ? AND completed_date >= ? AND completed_date < ?", completion.HabitID, dayStart, dayEnd).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateCompletion
		}

		return tx.Create(completion).Error
	})
	if isUniqueViolation(err) {
		return ErrDuplicateCompletion
	}
	return err
}

func (repo *CompletionRepository) Delete(completionID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var completion models.Completion
		if err := tx.First(&completion, completionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompletionNotFound
			}
			return err
		}
		return tx.Delete(&completion).Error
	})
}
