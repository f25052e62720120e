package repositories

import "pinpost/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByName(name string) (*models.User, error)
	Create(user *models.User) error
}
