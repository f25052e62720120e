package models

import "time"

// User represents a registered participant. The name doubles as the
// identity claim on protected requests, so it is unique and immutable.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}
