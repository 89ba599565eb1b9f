package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/quietrook/tally/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "tally-api-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	handler := NewHandler(database, time.Local)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, expectedStatus int) []byte {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d (body: %s)", method, path, expectedStatus, response.StatusCode, raw)
	}
	return raw
}

func decodeJSON[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return value
}

// localDay formats today+offset as the wire date in the test's local zone,
// matching the handler's notion of "today".
func localDay(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(dateLayout)
}

func createHabitViaAPI(t *testing.T, app *fiber.App, name string, emoji string) habitResponse {
	t.Helper()

	raw := doJSON(t, app, http.MethodPost, "/api/habits", habitPayload{Name: name, Emoji: emoji}, http.StatusOK)
	return decodeJSON[habitResponse](t, raw)
}

func createCompletionViaAPI(t *testing.T, app *fiber.App, habitID uint, date string) completionResponse {
	t.Helper()

	raw := doJSON(t, app, http.MethodPost, "/api/completions",
		completionPayload{HabitID: habitID, CompletedDate: date}, http.StatusOK)
	return decodeJSON[completionResponse](t, raw)
}
