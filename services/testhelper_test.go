package services

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"practrac/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway file-backed SQLite database with foreign keys
// enabled (cascades and FK violations behave like production) and migrates
// the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "practrac_test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Team{},
		&models.Player{},
		&models.Drill{},
		&models.Practice{},
		&models.Video{},
		&models.PracticeSession{},
		&models.Attendance{},
		&models.PlayerNote{},
	))
	return db
}

// newTestApp wires every route the API exposes against a fresh database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	app := fiber.New()

	roster := NewRosterService(db)
	library := NewLibraryService(db)
	session := NewSessionService(db)

	app.Get("/api/teams", roster.GetAllTeams)
	app.Get("/api/players", roster.GetAllPlayers)
	app.Get("/api/players/:id/notes", session.GetPlayerNoteHistory)
	app.Get("/api/players/:id", roster.GetPlayerByID)

	app.Get("/api/drills", library.GetAllDrills)
	app.Get("/api/drills/:id", library.GetDrillByID)
	app.Get("/api/practices", library.GetAllPractices)
	app.Get("/api/videos", library.GetAllVideos)
	app.Post("/api/videos", library.CreateVideo)

	app.Get("/api/practice-sessions/active", session.GetActiveSession)
	app.Post("/api/practice-sessions", session.CreateSession)
	app.Put("/api/practice-sessions/:id", session.UpdateSession)
	app.Delete("/api/practice-sessions/:id", session.CompleteSession)

	app.Post("/api/practice-attendance", session.BulkUpsertAttendance)
	app.Get("/api/player-notes/:sessionId/:playerId", session.GetPlayerNote)
	app.Post("/api/player-notes", session.UpsertPlayerNote)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
