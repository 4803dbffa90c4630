// services/library_service.go
package services

import (
	"errors"
	"path/filepath"

	"practrac/models"
	"practrac/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// LibraryService serves the drill library, practice plans and training videos.
type LibraryService struct {
	DB *gorm.DB
}

func NewLibraryService(db *gorm.DB) *LibraryService {
	return &LibraryService{DB: db}
}

// GetAllDrills returns every drill with equipment/focus decoded back into
// ordered lists (empty lists when the columns are empty).
func (s *LibraryService) GetAllDrills(c *fiber.Ctx) error {
	var drills []models.Drill
	if err := s.DB.Find(&drills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(drills)
}

func (s *LibraryService) GetDrillByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var drill models.Drill
	if err := s.DB.First(&drill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "drill not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(drill)
}

// GetAllPractices returns practice plans with decoded phases and the team name
// attached, most recent date first.
func (s *LibraryService) GetAllPractices(c *fiber.Ctx) error {
	var practices []models.Practice
	if err := s.DB.Preload("Team").
		Order("date DESC, created_at DESC").
		Find(&practices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	for i := range practices {
		if practices[i].Team != nil {
			practices[i].TeamName = practices[i].Team.Name
		}
	}
	return c.JSON(practices)
}

// GetAllVideos returns the video library grouped by category, then title.
func (s *LibraryService) GetAllVideos(c *fiber.Ctx) error {
	var videos []models.Video
	if err := s.DB.Order("category, title").Find(&videos).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(videos)
}

// CreateVideo adds a video to the library. An optional multipart "thumbnail"
// file is pushed to R2 when configured, otherwise saved under the local
// uploads dir (served at /uploads).
func (s *LibraryService) CreateVideo(c *fiber.Ctx) error {
	video := models.Video{
		Title:       c.FormValue("title"),
		Category:    c.FormValue("category"),
		Duration:    c.FormValue("duration"),
		Description: c.FormValue("description"),
		URL:         c.FormValue("url"),
	}
	if video.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	if thumb, err := c.FormFile("thumbnail"); err == nil && thumb.Size > 0 {
		ext := filepath.Ext(thumb.Filename)
		if ext == "" {
			ext = ".jpg"
		}
		key := "thumbnails/" + slug.Make(video.Title) + "-" + uuid.NewString()[:8] + ext

		if utils.R2Configured() {
			url, err := utils.UploadFileToR2(thumb, key)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload thumbnail"})
			}
			video.Thumbnail = url
		} else {
			localPath := utils.UploadPath(key)
			if err := utils.SaveFile(thumb, localPath); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save thumbnail"})
			}
			video.Thumbnail = "/" + localPath
		}
	}

	if err := s.DB.Create(&video).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}
