package models

import "errors"

// ErrLastItem is returned when removing an item would leave an order empty.
var ErrLastItem = errors.New("order must keep at least one item")

// ErrItemNotFound is returned when an item id is not part of the order.
var ErrItemNotFound = errors.New("order item not found")

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in-progress"
	StatusReady      OrderStatus = "ready"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{StatusPending, StatusInProgress, StatusReady, StatusDelivered, StatusCancelled}

// IsActive reports whether work on the order is still outstanding.
func (s OrderStatus) IsActive() bool {
	return s == StatusPending || s == StatusInProgress
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type GarmentType string

const (
	GarmentBlouse  GarmentType = "blouse"
	GarmentKurti   GarmentType = "kurti"
	GarmentSalwar  GarmentType = "salwar"
	GarmentLehenga GarmentType = "lehenga"
)

// GarmentTypes lists every garment the shop stitches.
var GarmentTypes = []GarmentType{GarmentBlouse, GarmentKurti, GarmentSalwar, GarmentLehenga}

// Order is a customer's stitching order. TotalAmount and RemainingAmount are
// derived from Items and AdvanceAmount and must only be set by Recalculate.
type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customerId"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	AdvanceAmount   float64     `json:"advanceAmount"`
	RemainingAmount float64     `json:"remainingAmount"`
	Status          OrderStatus `json:"status"`
	Priority        Priority    `json:"priority"`
	OrderDate       string      `json:"orderDate"`
	DueDate         string      `json:"dueDate"`
	DeliveryDate    string      `json:"deliveryDate,omitempty"`
	Notes           string      `json:"notes"`
}

func (o Order) GetID() string { return o.ID }

// OrderItem is one line of an order.
type OrderItem struct {
	ID                  string      `json:"id"`
	Type                GarmentType `json:"type"`
	Description         string      `json:"description"`
	Quantity            int         `json:"quantity"`
	PricePerItem        float64     `json:"pricePerItem"`
	Fabric              string      `json:"fabric,omitempty"`
	Color               string      `json:"color,omitempty"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
}

func (i OrderItem) GetID() string { return i.ID }

// LineTotal is quantity times unit price.
func (i OrderItem) LineTotal() float64 {
	return float64(i.Quantity) * i.PricePerItem
}

// Recalculate derives TotalAmount and RemainingAmount. Remaining is not
// clamped and goes negative when the advance exceeds the total.
func (o *Order) Recalculate() {
	var total float64
	for _, item := range o.Items {
		total += item.LineTotal()
	}
	o.TotalAmount = total
	o.RemainingAmount = total - o.AdvanceAmount
}

// SetAdvance records the advance payment and recalculates.
func (o *Order) SetAdvance(amount float64) {
	o.AdvanceAmount = amount
	o.Recalculate()
}

func (o *Order) AddItem(item OrderItem) {
	o.Items = append(cloneItems(o.Items), item)
	o.Recalculate()
}

// UpdateItem replaces the item with the same id.
func (o *Order) UpdateItem(item OrderItem) error {
	idx := o.itemIndex(item.ID)
	if idx < 0 {
		return ErrItemNotFound
	}
	items := cloneItems(o.Items)
	items[idx] = item
	o.Items = items
	o.Recalculate()
	return nil
}

// RemoveItem drops the item with the given id. The last remaining item can
// not be removed.
func (o *Order) RemoveItem(itemID string) error {
	idx := o.itemIndex(itemID)
	if idx < 0 {
		return ErrItemNotFound
	}
	if len(o.Items) <= 1 {
		return ErrLastItem
	}
	items := make([]OrderItem, 0, len(o.Items)-1)
	items = append(items, o.Items[:idx]...)
	items = append(items, o.Items[idx+1:]...)
	o.Items = items
	o.Recalculate()
	return nil
}

func (o *Order) itemIndex(itemID string) int {
	for i, item := range o.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

func cloneItems(items []OrderItem) []OrderItem {
	out := make([]OrderItem, len(items))
	copy(out, items)
	return out
}
