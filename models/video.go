// models/video.go
package models

import "time"

type Video struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`  // display string, e.g. "12:34"
	Thumbnail   string `json:"thumbnail"` // local path or CDN URL
	Description string `json:"description"`
	URL         string `json:"url"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
