package services_test

import (
	"pinpost/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByName(name string) (*models.User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockImageRepository is a mock implementation of repositories.ImageRepository.
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) GetAll() ([]models.Image, error) {
	args := m.Called()
	return args.Get(0).([]models.Image), args.Error(1)
}

func (m *MockImageRepository) GetByID(id string) (*models.Image, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageRepository) Create(image *models.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockImageRepository) DeleteCascade(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockThreadRepository is a mock implementation of repositories.ThreadRepository.
type MockThreadRepository struct {
	mock.Mock
}

func (m *MockThreadRepository) GetByImageID(imageID string) ([]models.Thread, error) {
	args := m.Called(imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Thread), args.Error(1)
}

func (m *MockThreadRepository) GetByID(id string) (*models.Thread, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Thread), args.Error(1)
}

func (m *MockThreadRepository) Create(thread *models.Thread) error {
	args := m.Called(thread)
	return args.Error(0)
}

func (m *MockThreadRepository) Update(thread *models.Thread) error {
	args := m.Called(thread)
	return args.Error(0)
}

func (m *MockThreadRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher records published annotation events.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAnnotationEvent(event string, payload map[string]interface{}) error {
	args := m.Called(event, payload)
	return args.Error(0)
}
