// handlers/session.go
package handlers

import (
	"practrac/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoutes(app *fiber.App, sessionService *services.SessionService) {
	// Session lifecycle: active → completed, DELETE completes rather than removes
	app.Get("/api/practice-sessions/active", sessionService.GetActiveSession)
	app.Post("/api/practice-sessions", sessionService.CreateSession)
	app.Put("/api/practice-sessions/:id", sessionService.UpdateSession)
	app.Delete("/api/practice-sessions/:id", sessionService.CompleteSession)

	// Per-session, per-player records
	app.Post("/api/practice-attendance", sessionService.BulkUpsertAttendance)
	app.Get("/api/player-notes/:sessionId/:playerId", sessionService.GetPlayerNote)
	app.Post("/api/player-notes", sessionService.UpsertPlayerNote)
}
