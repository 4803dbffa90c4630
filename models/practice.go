// models/practice.go
package models

import "time"

type Practice struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Date     string `json:"date"`     // YYYY-MM-DD
	Duration int    `json:"duration"` // minutes

	// The ordered phase plan, stored as a JSON text column
	Phases PhaseList `json:"phases" gorm:"type:text"`

	TeamID *uint `json:"team_id"`
	Team   *Team `json:"-" gorm:"foreignKey:TeamID"`

	TeamName string `json:"team_name" gorm:"-"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Deleting a practice removes the sessions that ran it
	Sessions []PracticeSession `json:"-" gorm:"foreignKey:PracticeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
