package repositories

import "pinpost/internal/models"

// ImageRepository defines the interface for image data access.
type ImageRepository interface {
	GetAll() ([]models.Image, error)
	GetByID(id string) (*models.Image, error)
	Create(image *models.Image) error
	// DeleteCascade removes the image and every thread attached to it as a
	// single unit: no reader may observe the image gone with a thread still
	// present, or the reverse.
	DeleteCascade(id string) error
}
