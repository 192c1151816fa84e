package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for tests and local development.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) Upsert(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	existing, ok := r.users[user.ID]
	if ok {
		user.CreatedAt = existing.CreatedAt
		if user.Headline == "" {
			user.Headline = existing.Headline
		}
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.users[user.ID] = user
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, userID string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryRepo) UpdateHeadline(_ context.Context, userID, headline string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Headline = headline
	user.UpdatedAt = time.Now().UTC()
	r.users[userID] = user
	return nil
}
