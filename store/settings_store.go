package store

import (
	"sync"

	"tailorbook-backend/models"
)

type SettingsStore struct {
	mu       sync.RWMutex
	settings models.ShopSettings
}

func NewSettingsStore(initial models.ShopSettings) *SettingsStore {
	return &SettingsStore{settings: initial}
}

func (s *SettingsStore) Get() models.ShopSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update replaces the settings and returns the previous value.
func (s *SettingsStore) Update(next models.ShopSettings) models.ShopSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.settings
	s.settings = next
	return prev
}
