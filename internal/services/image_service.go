package services

import (
	"context"
	"errors"
	"fmt"

	"pinpost/internal/apperrors"
	"pinpost/internal/imagesource"
	"pinpost/internal/models"
	"pinpost/internal/repositories"
)

// ErrImageSourceUnavailable marks a failure of the external image source;
// the handler reports it as a bad gateway rather than an internal error.
var ErrImageSourceUnavailable = errors.New("image source unavailable")

// ImageService handles image generation, listing and owner-gated deletion.
type ImageService struct {
	imageRepo repositories.ImageRepository
	source    imagesource.Source
	events    EventPublisher
}

// NewImageService creates a new ImageService. events may be nil.
func NewImageService(imageRepo repositories.ImageRepository, source imagesource.Source, events EventPublisher) *ImageService {
	return &ImageService{
		imageRepo: imageRepo,
		source:    source,
		events:    events,
	}
}

// ListImages returns all images in creation order.
func (s *ImageService) ListImages() ([]models.Image, error) {
	return s.imageRepo.GetAll()
}

// CreateImage obtains a fresh URL from the external source and records it as
// owned by principal. A source failure surfaces to the caller unretried.
func (s *ImageService) CreateImage(ctx context.Context, principal string) (*models.Image, error) {
	url, err := s.source.RandomImageURL(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageSourceUnavailable, err)
	}

	image := &models.Image{URL: url, CreatedBy: principal}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	publishEvent(s.events, "image.created", map[string]interface{}{
		"imageId":   image.ID,
		"createdBy": principal,
	})
	return image, nil
}

// DeleteImage removes an image the principal owns together with every thread
// attached to it. The cascade is atomic to readers.
func (s *ImageService) DeleteImage(principal, imageID string) error {
	image, err := s.imageRepo.GetByID(imageID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Image not found")
		}
		return fmt.Errorf("failed to get image %s: %w", imageID, err)
	}
	if image.CreatedBy != principal {
		return apperrors.Forbidden("You can only delete your own images")
	}

	if err := s.imageRepo.DeleteCascade(imageID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Image not found")
		}
		return fmt.Errorf("failed to delete image %s: %w", imageID, err)
	}

	publishEvent(s.events, "image.deleted", map[string]interface{}{
		"imageId":   imageID,
		"deletedBy": principal,
	})
	return nil
}
