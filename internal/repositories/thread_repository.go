package repositories

import "pinpost/internal/models"

// ThreadRepository defines the interface for thread data access.
type ThreadRepository interface {
	GetByImageID(imageID string) ([]models.Thread, error)
	GetByID(id string) (*models.Thread, error)
	Create(thread *models.Thread) error
	Update(thread *models.Thread) error
	Delete(id string) error
}
