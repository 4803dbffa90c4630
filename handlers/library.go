// handlers/library.go
package handlers

import (
	"practrac/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLibraryRoutes(app *fiber.App, libraryService *services.LibraryService) {
	app.Get("/api/drills", libraryService.GetAllDrills)
	app.Get("/api/drills/:id", libraryService.GetDrillByID)

	app.Get("/api/practices", libraryService.GetAllPractices)

	app.Get("/api/videos", libraryService.GetAllVideos)
	app.Post("/api/videos", libraryService.CreateVideo)
}
