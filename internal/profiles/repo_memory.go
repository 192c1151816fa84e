package profiles

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	profiles map[string]UserProfile
	prefs    map[string]Preferences
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		profiles: make(map[string]UserProfile),
		prefs:    make(map[string]Preferences),
	}
}

func (r *MemoryRepo) GetProfile(ctx context.Context, userID string) (UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return UserProfile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return UserProfile{}, ErrNotFound
	}
	return profile, nil
}

func (r *MemoryRepo) UpsertProfile(ctx context.Context, profile UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.profiles[profile.UserID]
	if ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *MemoryRepo) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	if err := ctx.Err(); err != nil {
		return Preferences{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	prefs, ok := r.prefs[userID]
	if !ok {
		return Preferences{}, ErrNotFound
	}
	return prefs, nil
}

func (r *MemoryRepo) UpsertPreferences(ctx context.Context, prefs Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.prefs[prefs.UserID]
	if ok {
		prefs.CreatedAt = existing.CreatedAt
	} else {
		prefs.CreatedAt = now
	}
	prefs.UpdatedAt = now
	r.prefs[prefs.UserID] = prefs
	return nil
}
