package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"tailorbook-backend/models"
	"tailorbook-backend/utils"
)

// OrderStore holds the session's orders. Totals are recalculated on every
// write so stored orders always satisfy the total/remaining rule.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
	newID  func() string
	now    func() time.Time
}

func NewOrderStore(seed []models.Order) *OrderStore {
	orders := cloneOrders(seed)
	for i := range orders {
		orders[i].Recalculate()
	}
	return &OrderStore{orders: orders, newID: NewID, now: time.Now}
}

func (s *OrderStore) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.orders)
}

func (s *OrderStore) Get(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := Find(s.orders, id)
	if !ok {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	return cloneOrder(o), nil
}

func (s *OrderStore) Search(query string) []models.Order {
	return SearchOrders(s.List(), query)
}

// ListByCustomer returns the orders referencing customerID.
func (s *OrderStore) ListByCustomer(customerID string) []models.Order {
	return Filter(s.List(), func(o models.Order) bool { return o.CustomerID == customerID })
}

func (s *OrderStore) CountByCustomer(customerID string) int {
	return len(s.ListByCustomer(customerID))
}

// Add assigns ids to the order and its items, fills defaults and appends it.
func (s *OrderStore) Add(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uniqueID(s.orders, s.newID)
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	if o.Priority == "" {
		o.Priority = models.PriorityMedium
	}
	if o.OrderDate == "" {
		o.OrderDate = utils.FormatDate(s.now())
	}
	o.Items = s.withItemIDs(o.Items)
	o.Recalculate()
	s.orders = Add(s.orders, o)
	return cloneOrder(o)
}

// Update replaces the order with o.ID wholesale.
func (s *OrderStore) Update(o models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.Items = s.withItemIDs(o.Items)
	o.Recalculate()
	next, ok := Replace(s.orders, o)
	if !ok {
		return models.Order{}, fmt.Errorf("order %s: %w", o.ID, ErrOrderNotFound)
	}
	s.orders = next
	return cloneOrder(o), nil
}

func (s *OrderStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := Remove(s.orders, id)
	if !ok {
		return fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	s.orders = next
	return nil
}

// Modify applies fn to a copy of the order and stores the result when fn
// succeeds.
func (s *OrderStore) Modify(id string, fn func(o *models.Order) error) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := Find(s.orders, id)
	if !ok {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	o = cloneOrder(o)
	if err := fn(&o); err != nil {
		return models.Order{}, err
	}
	o.Recalculate()
	s.orders, _ = Replace(s.orders, o)
	return cloneOrder(o), nil
}

func (s *OrderStore) AddItem(orderID string, item models.OrderItem) (models.Order, error) {
	return s.Modify(orderID, func(o *models.Order) error {
		item.ID = s.itemID(o.Items)
		o.AddItem(item)
		return nil
	})
}

func (s *OrderStore) UpdateItem(orderID string, item models.OrderItem) (models.Order, error) {
	return s.Modify(orderID, func(o *models.Order) error {
		return o.UpdateItem(item)
	})
}

func (s *OrderStore) RemoveItem(orderID, itemID string) (models.Order, error) {
	return s.Modify(orderID, func(o *models.Order) error {
		return o.RemoveItem(itemID)
	})
}

func (s *OrderStore) SetAdvance(orderID string, amount float64) (models.Order, error) {
	return s.Modify(orderID, func(o *models.Order) error {
		o.SetAdvance(amount)
		return nil
	})
}

// SetStatus moves the order to status. Delivering an order without a
// delivery date stamps today's date.
func (s *OrderStore) SetStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	return s.Modify(orderID, func(o *models.Order) error {
		o.Status = status
		if status == models.StatusDelivered && o.DeliveryDate == "" {
			o.DeliveryDate = utils.FormatDate(s.now())
		}
		return nil
	})
}

func (s *OrderStore) withItemIDs(items []models.OrderItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.ID == "" || indexOf(out, item.ID) >= 0 {
			item.ID = s.itemID(out)
		}
		out = append(out, item)
	}
	return out
}

func (s *OrderStore) itemID(items []models.OrderItem) string {
	return uniqueID(items, s.newID)
}

// cloneOrder copies the order together with its items so callers never share
// an Items backing array with the store.
func cloneOrder(o models.Order) models.Order {
	o.Items = clone(o.Items)
	return o
}

func cloneOrders(list []models.Order) []models.Order {
	out := make([]models.Order, len(list))
	for i, o := range list {
		out[i] = cloneOrder(o)
	}
	return out
}

// SearchOrders matches the customer name case-insensitively, or the phone
// or order id as plain substrings.
func SearchOrders(list []models.Order, query string) []models.Order {
	if query == "" {
		return clone(list)
	}
	lower := strings.ToLower(query)
	return Filter(list, func(o models.Order) bool {
		return strings.Contains(strings.ToLower(o.CustomerName), lower) ||
			strings.Contains(o.CustomerPhone, query) ||
			strings.Contains(o.ID, query)
	})
}

// FilterByStatus keeps orders in the given status; empty keeps all.
func FilterByStatus(list []models.Order, status models.OrderStatus) []models.Order {
	if status == "" {
		return list
	}
	return Filter(list, func(o models.Order) bool { return o.Status == status })
}
