package repositories

import (
	"sync"
	"time"

	"pinpost/internal/models"
)

// MemoryStore keeps all collections in process memory behind one RWMutex, so
// cross-collection operations like the image delete cascade are atomic to
// readers. State lives exactly as long as the process; this is the documented
// in-memory-only mode, not an accident.
type MemoryStore struct {
	mu      sync.RWMutex
	users   []models.User
	images  []models.Image
	threads []models.Thread
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Users returns the user repository view of the store.
func (s *MemoryStore) Users() UserRepository { return &memoryUserRepo{store: s} }

// Images returns the image repository view of the store.
func (s *MemoryStore) Images() ImageRepository { return &memoryImageRepo{store: s} }

// Threads returns the thread repository view of the store.
func (s *MemoryStore) Threads() ThreadRepository { return &memoryThreadRepo{store: s} }

type memoryUserRepo struct {
	store *MemoryStore
}

func (r *memoryUserRepo) GetAll() ([]models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]models.User, len(r.store.users))
	copy(users, r.store.users)
	return users, nil
}

func (r *memoryUserRepo) GetByName(name string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Name == name {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepo) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == "" {
		user.ID = newID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.store.users = append(r.store.users, *user)
	return nil
}

type memoryImageRepo struct {
	store *MemoryStore
}

func (r *memoryImageRepo) GetAll() ([]models.Image, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	images := make([]models.Image, len(r.store.images))
	copy(images, r.store.images)
	return images, nil
}

func (r *memoryImageRepo) GetByID(id string) (*models.Image, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, img := range r.store.images {
		if img.ID == id {
			image := img
			return &image, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryImageRepo) Create(image *models.Image) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if image.ID == "" {
		image.ID = newID()
	}
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}
	r.store.images = append(r.store.images, *image)
	return nil
}

// DeleteCascade removes the image and its threads under one write lock.
func (r *memoryImageRepo) DeleteCascade(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	index := -1
	for i, img := range r.store.images {
		if img.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrNotFound
	}

	kept := r.store.threads[:0]
	for _, t := range r.store.threads {
		if t.ImageID != id {
			kept = append(kept, t)
		}
	}
	r.store.threads = kept
	r.store.images = append(r.store.images[:index], r.store.images[index+1:]...)
	return nil
}

type memoryThreadRepo struct {
	store *MemoryStore
}

func (r *memoryThreadRepo) GetByImageID(imageID string) ([]models.Thread, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	threads := make([]models.Thread, 0)
	for _, t := range r.store.threads {
		if t.ImageID == imageID {
			threads = append(threads, t)
		}
	}
	return threads, nil
}

func (r *memoryThreadRepo) GetByID(id string) (*models.Thread, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.threads {
		if t.ID == id {
			thread := t
			return &thread, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryThreadRepo) Create(thread *models.Thread) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if thread.ID == "" {
		thread.ID = newID()
	}
	if thread.CreatedAt.IsZero() {
		thread.CreatedAt = time.Now()
	}
	r.store.threads = append(r.store.threads, *thread)
	return nil
}

func (r *memoryThreadRepo) Update(thread *models.Thread) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, t := range r.store.threads {
		if t.ID == thread.ID {
			r.store.threads[i] = *thread
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryThreadRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, t := range r.store.threads {
		if t.ID == id {
			r.store.threads = append(r.store.threads[:i], r.store.threads[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
