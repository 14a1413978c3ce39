package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder() Order {
	o := Order{
		ID: "1",
		Items: []OrderItem{
			{ID: "a", Type: GarmentBlouse, Quantity: 1, PricePerItem: 1500},
		},
		AdvanceAmount: 500,
	}
	o.Recalculate()
	return o
}

func TestRecalculateAfterAddingItem(t *testing.T) {
	o := newOrder()
	assert.Equal(t, 1500.0, o.TotalAmount)
	assert.Equal(t, 1000.0, o.RemainingAmount)

	o.AddItem(OrderItem{ID: "b", Type: GarmentKurti, Quantity: 2, PricePerItem: 800})
	assert.Equal(t, 3100.0, o.TotalAmount)
	assert.Equal(t, 2600.0, o.RemainingAmount)
}

func TestRemainingGoesNegative(t *testing.T) {
	o := newOrder()
	o.SetAdvance(2000)
	assert.Equal(t, 1500.0, o.TotalAmount)
	assert.Equal(t, -500.0, o.RemainingAmount)
}

func TestUpdateItemRecalculates(t *testing.T) {
	o := newOrder()
	require.NoError(t, o.UpdateItem(OrderItem{ID: "a", Type: GarmentBlouse, Quantity: 3, PricePerItem: 1000}))
	assert.Equal(t, 3000.0, o.TotalAmount)
	assert.Equal(t, 2500.0, o.RemainingAmount)

	assert.ErrorIs(t, o.UpdateItem(OrderItem{ID: "zz"}), ErrItemNotFound)
}

func TestRemoveItemKeepsLastOne(t *testing.T) {
	o := newOrder()
	assert.ErrorIs(t, o.RemoveItem("a"), ErrLastItem)
	assert.Len(t, o.Items, 1)

	o.AddItem(OrderItem{ID: "b", Type: GarmentSalwar, Quantity: 1, PricePerItem: 700})
	require.NoError(t, o.RemoveItem("a"))
	assert.Len(t, o.Items, 1)
	assert.Equal(t, "b", o.Items[0].ID)
	assert.Equal(t, 700.0, o.TotalAmount)
	assert.Equal(t, 200.0, o.RemainingAmount)

	assert.ErrorIs(t, o.RemoveItem("missing"), ErrItemNotFound)
}

func TestItemEditsDoNotTouchSharedSlice(t *testing.T) {
	o := newOrder()
	before := o.Items

	o.AddItem(OrderItem{ID: "b", Quantity: 1, PricePerItem: 10})
	require.NoError(t, o.UpdateItem(OrderItem{ID: "a", Quantity: 9, PricePerItem: 1}))

	assert.Len(t, before, 1)
	assert.Equal(t, 1, before[0].Quantity)
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusInProgress.IsActive())
	assert.False(t, StatusReady.IsActive())
	assert.False(t, StatusDelivered.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}
