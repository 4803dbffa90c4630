// services/roster_service.go
package services

import (
	"errors"

	"practrac/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RosterService struct {
	DB *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{DB: db}
}

// GetAllTeams returns every team, newest first.
func (s *RosterService) GetAllTeams(c *fiber.Ctx) error {
	var teams []models.Team
	if err := s.DB.Order("created_at DESC, id DESC").Find(&teams).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(teams)
}

// GetAllPlayers returns the roster ordered by last then first name, with the
// team name denormalized onto each row.
func (s *RosterService) GetAllPlayers(c *fiber.Ctx) error {
	var players []models.Player
	if err := s.DB.Preload("Team").
		Order("last_name, first_name").
		Find(&players).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	for i := range players {
		if players[i].Team != nil {
			players[i].TeamName = players[i].Team.Name
		}
	}
	return c.JSON(players)
}

// GetPlayerByID returns a single player or 404.
func (s *RosterService) GetPlayerByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var player models.Player
	if err := s.DB.Preload("Team").First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "player not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if player.Team != nil {
		player.TeamName = player.Team.Name
	}
	return c.JSON(player)
}
