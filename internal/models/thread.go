package models

import "time"

// Thread is a single positioned comment on an image. X and Y are percentages
// of the rendered image width/height and stay within [0, 100]. A thread never
// outlives its image: deleting the image removes its threads in the same
// logical unit.
type Thread struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ImageID   string    `json:"imageId" gorm:"not null;index;type:varchar(36)"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Comment   string    `json:"comment" gorm:"not null"`
	CreatedBy string    `json:"createdBy" gorm:"not null;type:varchar(100)"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}
