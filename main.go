package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"practrac/config"
	"practrac/handlers"
	"practrac/middleware"
	"practrac/models"
	"practrac/services"
	"practrac/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // thumbnails only, keep it small
	})

	app.Use(middleware.RequestID())

	// Trim spaces from the comma-separated origins list before handing it to fiber
	originsList := strings.Split(cfg.AllowedOrigins, ",")
	for i, origin := range originsList {
		originsList[i] = strings.TrimSpace(origin)
	}
	allowedOrigins := strings.Join(originsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	// Single-file SQLite store; foreign keys on so cascade deletes actually fire
	dsn := cfg.DatabasePath + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open database:", err)
	}

	if err := db.AutoMigrate(
		&models.Team{},
		&models.Player{},
		&models.Drill{},
		&models.Practice{},
		&models.Video{},
		&models.PracticeSession{},
		&models.Attendance{},
		&models.PlayerNote{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := services.SeedDemoData(db); err != nil {
		log.Fatal("failed to seed demo data:", err)
	}

	if err := utils.EnsureUploadDir(cfg.UploadDir); err != nil {
		log.Fatal("failed to ensure upload dir:", err)
	}

	rosterService := services.NewRosterService(db)
	libraryService := services.NewLibraryService(db)
	sessionService := services.NewSessionService(db)

	sessionService.StartSessionJanitor(cfg.JanitorInterval, cfg.SessionMaxAge)

	handlers.SetupRosterRoutes(app, rosterService, sessionService)
	handlers.SetupLibraryRoutes(app, libraryService)
	handlers.SetupSessionRoutes(app, sessionService)

	// Static frontend: shell, page documents, scripts, locally stored thumbnails
	app.Static("/uploads", "./"+cfg.UploadDir)
	app.Static("/", cfg.PublicDir, fiber.Static{Index: "index.html"})

	// Page routes serve the shell; the client-side loader picks the page from
	// the path, so a direct visit or reload on /roster etc. still works
	shell := filepath.Join(cfg.PublicDir, "index.html")
	for _, route := range []string{"/practice", "/roster", "/drills", "/videos", "/analytics"} {
		app.Get(route, func(c *fiber.Ctx) error {
			return c.SendFile(shell)
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ PracTrac running on http://localhost:%s", cfg.ServerPort)
	log.Printf("✅ Database: %s", cfg.DatabasePath)
	log.Printf("✅ Session janitor running (every %s, completes sessions idle > %s)", cfg.JanitorInterval, cfg.SessionMaxAge)
	log.Printf("✅ CORS configured for origins: %s", allowedOrigins)

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
