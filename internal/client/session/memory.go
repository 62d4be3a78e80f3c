package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/planandgo/internal/client/models"
)

// MemoryStore keeps the session in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
	user    models.UserProfile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AccessToken(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access, nil
}

func (s *MemoryStore) RefreshToken(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh, nil
}

func (s *MemoryStore) User(context.Context) (models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, nil
	}
	return append(models.UserProfile(nil), s.user...), nil
}

func (s *MemoryStore) SetTokens(_ context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = access, refresh
	return nil
}

func (s *MemoryStore) SetAccessToken(_ context.Context, access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	return nil
}

func (s *MemoryStore) SetUser(_ context.Context, u models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = append(models.UserProfile(nil), u...)
	return nil
}

func (s *MemoryStore) ClearTokens(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = "", ""
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh, s.user = "", "", nil
	return nil
}
