package db

import (
	"errors"
	"strings"
)

var (
	ErrHabitNotFound       = errors.New("habit not found")
	ErrCompletionNotFound  = errors.New("completion not found")
	ErrDuplicateCompletion = errors.New("completion already exists for that habit and day")
)

// isUniqueViolation detects the SQLite unique-index failure raised when two
// writers race past the in-transaction duplicate check.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
