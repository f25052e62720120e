package repositories

import (
	"errors"
	"fmt"

	"pinpost/internal/models"

	"gorm.io/gorm"
)

// GORMThreadRepository is a GORM implementation of ThreadRepository.
type GORMThreadRepository struct {
	db *gorm.DB
}

// NewGORMThreadRepository creates a new instance of GORMThreadRepository.
func NewGORMThreadRepository(db *gorm.DB) *GORMThreadRepository {
	return &GORMThreadRepository{db: db}
}

func (r *GORMThreadRepository) GetByImageID(imageID string) ([]models.Thread, error) {
	threads := make([]models.Thread, 0)
	if err := r.db.Where("image_id = ?", imageID).Order("created_at asc, id asc").Find(&threads).Error; err != nil {
		return nil, fmt.Errorf("failed to list threads for image %s: %w", imageID, err)
	}
	return threads, nil
}

func (r *GORMThreadRepository) GetByID(id string) (*models.Thread, error) {
	var thread models.Thread
	if err := r.db.First(&thread, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get thread %s: %w", id, err)
	}
	return &thread, nil
}

func (r *GORMThreadRepository) Create(thread *models.Thread) error {
	if thread.ID == "" {
		thread.ID = newID()
	}
	if err := r.db.Create(thread).Error; err != nil {
		return fmt.Errorf("failed to create thread: %w", err)
	}
	return nil
}

func (r *GORMThreadRepository) Update(thread *models.Thread) error {
	result := r.db.Model(&models.Thread{}).Where("id = ?", thread.ID).
		Updates(map[string]interface{}{"x": thread.X, "y": thread.Y})
	if result.Error != nil {
		return fmt.Errorf("failed to update thread %s: %w", thread.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GORMThreadRepository) Delete(id string) error {
	result := r.db.Delete(&models.Thread{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete thread %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
