// handlers/roster.go
package handlers

import (
	"practrac/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRosterRoutes(app *fiber.App, rosterService *services.RosterService, sessionService *services.SessionService) {
	app.Get("/api/teams", rosterService.GetAllTeams)

	app.Get("/api/players", rosterService.GetAllPlayers)
	// Register /notes before the plain :id route so it wins the match
	app.Get("/api/players/:id/notes", sessionService.GetPlayerNoteHistory)
	app.Get("/api/players/:id", rosterService.GetPlayerByID)
}
