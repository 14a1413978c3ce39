package store

import (
	"log"

	"tailorbook-backend/models"
)

// Store bundles the in-memory collections for one process. Nothing is
// persisted; a restart starts from the seed again.
type Store struct {
	Customers *CustomerStore
	Orders    *OrderStore
	Settings  *SettingsStore
}

// New builds a store, optionally loaded with the sample collections.
func New(seed bool) *Store {
	var customers []models.Customer
	var orders []models.Order
	if seed {
		customers = SampleCustomers()
		orders = SampleOrders()
		log.Printf("[STORE] seeded %d customers and %d orders", len(customers), len(orders))
	}
	return &Store{
		Customers: NewCustomerStore(customers),
		Orders:    NewOrderStore(orders),
		Settings:  NewSettingsStore(models.DefaultSettings()),
	}
}
