package repositories

import (
	"errors"
	"fmt"

	"pinpost/internal/models"

	"gorm.io/gorm"
)

// GORMImageRepository is a GORM implementation of ImageRepository.
type GORMImageRepository struct {
	db *gorm.DB
}

// NewGORMImageRepository creates a new instance of GORMImageRepository.
func NewGORMImageRepository(db *gorm.DB) *GORMImageRepository {
	return &GORMImageRepository{db: db}
}

func (r *GORMImageRepository) GetAll() ([]models.Image, error) {
	var images []models.Image
	if err := r.db.Order("created_at asc, id asc").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

func (r *GORMImageRepository) GetByID(id string) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get image %s: %w", id, err)
	}
	return &image, nil
}

func (r *GORMImageRepository) Create(image *models.Image) error {
	if image.ID == "" {
		image.ID = newID()
	}
	if err := r.db.Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

// DeleteCascade deletes the image's threads and the image in one transaction.
func (r *GORMImageRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Image{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete image %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Delete(&models.Thread{}, "image_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete threads of image %s: %w", id, err)
		}
		return nil
	})
}
