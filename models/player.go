// models/player.go
package models

import "time"

const (
	PositionSetter         = "setter"
	PositionOutsideHitter  = "outside_hitter"
	PositionMiddleBlocker  = "middle_blocker"
	PositionOppositeHitter = "opposite_hitter"
	PositionLibero         = "libero"
	PositionDefensive      = "defensive_specialist"
)

// PlayerStats holds the cumulative stat counters. Stored as flat columns on
// the player row but nested under "stats" in API responses; a player inserted
// without stats reports every counter as 0, never absent.
type PlayerStats struct {
	Kills   int `json:"kills" gorm:"column:kills;not null;default:0"`
	Blocks  int `json:"blocks" gorm:"column:blocks;not null;default:0"`
	Aces    int `json:"aces" gorm:"column:aces;not null;default:0"`
	Digs    int `json:"digs" gorm:"column:digs;not null;default:0"`
	Assists int `json:"assists" gorm:"column:assists;not null;default:0"`
}

type Player struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	FirstName    string `json:"first_name" gorm:"not null"`
	LastName     string `json:"last_name" gorm:"not null"`
	JerseyNumber int    `json:"jersey_number"`
	Position     string `json:"position"`
	SkillLevel   string `json:"skill_level"` // beginner | intermediate | advanced
	Height       string `json:"height"`      // display string, e.g. 5'10"
	Year         string `json:"year"`        // freshman | sophomore | junior | senior

	Stats PlayerStats `json:"stats" gorm:"embedded"`

	TeamID *uint `json:"team_id"`
	Team   *Team `json:"-" gorm:"foreignKey:TeamID"`

	// Denormalized from the joined team, not stored
	TeamName string `json:"team_name" gorm:"-"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
