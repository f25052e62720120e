package services

import (
	"errors"
	"fmt"

	"pinpost/internal/apperrors"
	"pinpost/internal/models"
	"pinpost/internal/repositories"
	"pinpost/internal/sanitize"
	"pinpost/pkg/pinboard"
)

// ThreadService implements the positioning and ownership rules for threads:
// coordinates are clamped into [0, 100] on every write path, comments are
// stored as plain text, and only the creator may move or delete a thread.
type ThreadService struct {
	threadRepo repositories.ThreadRepository
	imageRepo  repositories.ImageRepository
	events     EventPublisher
}

// NewThreadService creates a new ThreadService. events may be nil.
func NewThreadService(threadRepo repositories.ThreadRepository, imageRepo repositories.ImageRepository, events EventPublisher) *ThreadService {
	return &ThreadService{
		threadRepo: threadRepo,
		imageRepo:  imageRepo,
		events:     events,
	}
}

// CreateThread attaches a new positioned comment to an existing image.
// x and y are pointers so a missing or non-numeric field is distinguishable
// from zero; both are required here.
func (s *ThreadService) CreateThread(principal, imageID string, x, y *float64, comment string) (*models.Thread, error) {
	if _, err := s.imageRepo.GetByID(imageID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Image not found")
		}
		return nil, fmt.Errorf("failed to get image %s: %w", imageID, err)
	}

	if x == nil || y == nil || comment == "" {
		return nil, apperrors.Validation("Invalid thread data. x, y must be numbers and comment must be a string")
	}

	thread := &models.Thread{
		ImageID:   imageID,
		X:         pinboard.Clamp(*x),
		Y:         pinboard.Clamp(*y),
		Comment:   sanitize.Text(comment),
		CreatedBy: principal,
	}
	if err := s.threadRepo.Create(thread); err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	publishEvent(s.events, "thread.created", map[string]interface{}{
		"threadId":  thread.ID,
		"imageId":   imageID,
		"createdBy": principal,
	})
	return thread, nil
}

// ListThreadsForImage returns the threads of an existing image in creation
// order. A missing image is a not-found error, never an empty list.
func (s *ThreadService) ListThreadsForImage(imageID string) ([]models.Thread, error) {
	if _, err := s.imageRepo.GetByID(imageID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Image not found")
		}
		return nil, fmt.Errorf("failed to get image %s: %w", imageID, err)
	}
	return s.threadRepo.GetByImageID(imageID)
}

// UpdateThreadPosition moves a thread the principal owns. Each coordinate is
// optional; provided values are clamped into [0, 100] before storage.
func (s *ThreadService) UpdateThreadPosition(principal, threadID string, x, y *float64) (*models.Thread, error) {
	thread, err := s.threadRepo.GetByID(threadID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Thread not found")
		}
		return nil, fmt.Errorf("failed to get thread %s: %w", threadID, err)
	}
	if thread.CreatedBy != principal {
		return nil, apperrors.Forbidden("You can only update your own threads")
	}

	if x != nil {
		thread.X = pinboard.Clamp(*x)
	}
	if y != nil {
		thread.Y = pinboard.Clamp(*y)
	}
	if err := s.threadRepo.Update(thread); err != nil {
		return nil, fmt.Errorf("failed to update thread %s: %w", threadID, err)
	}

	publishEvent(s.events, "thread.moved", map[string]interface{}{
		"threadId": thread.ID,
		"x":        thread.X,
		"y":        thread.Y,
	})
	return thread, nil
}

// DeleteThread removes a thread the principal owns.
func (s *ThreadService) DeleteThread(principal, threadID string) error {
	thread, err := s.threadRepo.GetByID(threadID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Thread not found")
		}
		return fmt.Errorf("failed to get thread %s: %w", threadID, err)
	}
	if thread.CreatedBy != principal {
		return apperrors.Forbidden("You can only delete your own threads")
	}

	if err := s.threadRepo.Delete(threadID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Thread not found")
		}
		return fmt.Errorf("failed to delete thread %s: %w", threadID, err)
	}

	publishEvent(s.events, "thread.deleted", map[string]interface{}{
		"threadId":  threadID,
		"deletedBy": principal,
	})
	return nil
}
