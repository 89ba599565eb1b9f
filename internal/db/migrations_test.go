package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteBootstrapsSchema(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)

	for _, table := range []string{"habits", "completions", "schema_migrations"} {
		var count int64
		if err := database.Raw(
			`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error; err != nil {
			t.Fatalf("inspect sqlite_master: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	var indexCount int64
	if err := database.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type = 'index' AND name = 'uidx_habit_day'`,
	).Scan(&indexCount).Error; err != nil {
		t.Fatalf("inspect indexes: %v", err)
	}
	if indexCount != 1 {
		t.Fatal("expected unique habit/day index to exist")
	}
}

func TestMigrationsAreIdempotentAcrossReopens(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "tally-reopen-test.db")

	for attempt := 0; attempt < 2; attempt++ {
		database, err := OpenSQLite(databasePath)
		if err != nil {
			t.Fatalf("open sqlite (attempt %d): %v", attempt, err)
		}
		sqlDB, err := database.DB()
		if err != nil {
			t.Fatalf("open sql db: %v", err)
		}

		var applied int64
		if err := database.Raw(`SELECT count(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
			t.Fatalf("count applied migrations: %v", err)
		}
		if applied == 0 {
			t.Fatal("expected at least one applied migration")
		}

		if err := sqlDB.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	}
}
