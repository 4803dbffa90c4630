// models/team.go
package models

import "time"

type Team struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Season   string `json:"season"`
	Division string `json:"division"`
	Coach    string `json:"coach"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Deleting a team takes its roster and practice plans with it
	Players   []Player   `json:"players,omitempty" gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Practices []Practice `json:"practices,omitempty" gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
