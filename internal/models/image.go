package models

import "time"

// Image is an externally hosted picture that threads attach to. The URL is
// immutable once recorded; only CreatedBy may delete the image.
type Image struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedBy string    `json:"createdBy" gorm:"not null;index;type:varchar(100)"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}
