// models/drill.go
package models

import "time"

const (
	DrillCategoryServing   = "serving"
	DrillCategoryPassing   = "passing"
	DrillCategorySetting   = "setting"
	DrillCategoryHitting   = "hitting"
	DrillCategoryBlocking  = "blocking"
	DrillCategoryDefense   = "defense"
	DrillCategoryScrimmage = "scrimmage"
)

type Drill struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Category    string `json:"category"`
	Duration    int    `json:"duration"` // minutes
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`

	// Ordered lists stored as JSON text columns
	Equipment StringList `json:"equipment" gorm:"type:text"`
	Focus     StringList `json:"focus" gorm:"type:text"`

	MinPlayers int `json:"min_players"`
	MaxPlayers int `json:"max_players"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
