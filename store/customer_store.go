package store

import (
	"fmt"
	"strings"
	"sync"

	"tailorbook-backend/models"
)

// CustomerStore holds the session's customer collection. Every write swaps
// in a new snapshot; snapshots handed out earlier are never modified.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []models.Customer
	newID     func() string
}

func NewCustomerStore(seed []models.Customer) *CustomerStore {
	return &CustomerStore{customers: clone(seed), newID: NewID}
}

// List returns the current snapshot in insertion order.
func (s *CustomerStore) List() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.customers)
}

func (s *CustomerStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

func (s *CustomerStore) Get(id string) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := Find(s.customers, id)
	if !ok {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
	}
	return c, nil
}

// Search filters the current snapshot with SearchCustomers.
func (s *CustomerStore) Search(query string) []models.Customer {
	return SearchCustomers(s.List(), query)
}

// Add assigns a fresh id to c and appends it.
func (s *CustomerStore) Add(c models.Customer) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uniqueID(s.customers, s.newID)
	s.customers = Add(s.customers, c)
	return c
}

// Update replaces the customer with c.ID.
func (s *CustomerStore) Update(c models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := Replace(s.customers, c)
	if !ok {
		return models.Customer{}, fmt.Errorf("customer %s: %w", c.ID, ErrCustomerNotFound)
	}
	s.customers = next
	return c, nil
}

// Delete removes the customer. Orders pointing at it are left alone.
func (s *CustomerStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := Remove(s.customers, id)
	if !ok {
		return fmt.Errorf("customer %s: %w", id, ErrCustomerNotFound)
	}
	s.customers = next
	return nil
}

// SearchCustomers matches the name case-insensitively or the phone as a
// plain substring. An empty query matches everything.
func SearchCustomers(list []models.Customer, query string) []models.Customer {
	if query == "" {
		return clone(list)
	}
	lower := strings.ToLower(query)
	return Filter(list, func(c models.Customer) bool {
		return strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(c.Phone, query)
	})
}
