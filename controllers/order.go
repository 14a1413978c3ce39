package controllers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"tailorbook-backend/models"
	"tailorbook-backend/services"
	"tailorbook-backend/store"
	"tailorbook-backend/utils"
)

type OrderItemInput struct {
	ID                  string             `json:"id"`
	Type                models.GarmentType `json:"type" binding:"required,oneof=blouse kurti salwar lehenga"`
	Description         string             `json:"description"`
	Quantity            int                `json:"quantity" binding:"required,min=1"`
	PricePerItem        float64            `json:"pricePerItem" binding:"min=0"`
	Fabric              string             `json:"fabric"`
	Color               string             `json:"color"`
	SpecialInstructions string             `json:"specialInstructions"`
}

func (in OrderItemInput) toModel() models.OrderItem {
	return models.OrderItem{
		ID:                  in.ID,
		Type:                in.Type,
		Description:         in.Description,
		Quantity:            in.Quantity,
		PricePerItem:        in.PricePerItem,
		Fabric:              in.Fabric,
		Color:               in.Color,
		SpecialInstructions: in.SpecialInstructions,
	}
}

// OrderInput is the order form. totalAmount and remainingAmount are not
// accepted; they are always recalculated.
type OrderInput struct {
	CustomerID    string             `json:"customerId" binding:"required"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []OrderItemInput   `json:"items" binding:"required,min=1,dive"`
	AdvanceAmount float64            `json:"advanceAmount" binding:"min=0"`
	Status        models.OrderStatus `json:"status" binding:"omitempty,oneof=pending in-progress ready delivered cancelled"`
	Priority      models.Priority    `json:"priority" binding:"omitempty,oneof=low medium high"`
	OrderDate     string             `json:"orderDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate       string             `json:"dueDate" binding:"required,datetime=2006-01-02"`
	DeliveryDate  string             `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`
	Notes         string             `json:"notes"`
}

func (in OrderInput) toModel() models.Order {
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, item.toModel())
	}
	return models.Order{
		CustomerID:    in.CustomerID,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Items:         items,
		AdvanceAmount: in.AdvanceAmount,
		Status:        in.Status,
		Priority:      in.Priority,
		OrderDate:     in.OrderDate,
		DueDate:       in.DueDate,
		DeliveryDate:  in.DeliveryDate,
		Notes:         in.Notes,
	}
}

type UpdateStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required,oneof=pending in-progress ready delivered cancelled"`
}

type UpdateAdvanceInput struct {
	AdvanceAmount *float64 `json:"advanceAmount" binding:"required,min=0"`
}

type OrderController struct {
	Store *store.Store
}

func NewOrderController(st *store.Store) *OrderController {
	return &OrderController{Store: st}
}

// CreateOrder adds an order. The customer's current name and phone are
// copied onto the order when the customer exists.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order := input.toModel()
	if customer, err := oc.Store.Customers.Get(order.CustomerID); err == nil {
		order.CustomerName = customer.Name
		order.CustomerPhone = customer.Phone
	} else if order.CustomerName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown customer and no customerName given")
		return
	}

	order = oc.Store.Orders.Add(order)
	c.JSON(http.StatusCreated, order)
}

// GetOrders lists orders, filtered by ?search= and ?status=.
func (oc *OrderController) GetOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	if status != "" && !slices.Contains(models.OrderStatuses, status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}
	orders := oc.Store.Orders.Search(strings.TrimSpace(c.Query("search")))
	c.JSON(http.StatusOK, store.FilterByStatus(orders, status))
}

func (oc *OrderController) GetOrderStats(c *gin.Context) {
	c.JSON(http.StatusOK, services.BuildOrderStats(oc.Store.Orders.List()))
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	order, err := oc.Store.Orders.Get(c.Param("id"))
	if err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder replaces the whole order. The customer snapshot is kept when
// the form leaves it blank.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id := c.Param("id")
	existing, err := oc.Store.Orders.Get(id)
	if err != nil {
		respondWithStoreError(c, err)
		return
	}

	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order := input.toModel()
	order.ID = id
	if order.CustomerName == "" {
		order.CustomerName = existing.CustomerName
	}
	if order.CustomerPhone == "" {
		order.CustomerPhone = existing.CustomerPhone
	}
	if order.Status == "" {
		order.Status = existing.Status
	}
	if order.Priority == "" {
		order.Priority = existing.Priority
	}
	if order.OrderDate == "" {
		order.OrderDate = existing.OrderDate
	}

	order, err = oc.Store.Orders.Update(order)
	if err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	if err := oc.Store.Orders.Delete(c.Param("id")); err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	order, err := oc.Store.Orders.SetStatus(c.Param("id"), input.Status)
	if err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) UpdateOrderAdvance(c *gin.Context) {
	var input UpdateAdvanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	order, err := oc.Store.Orders.SetAdvance(c.Param("id"), *input.AdvanceAmount)
	if err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) AddOrderItem(c *gin.Context) {
	var input OrderItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	order, err := oc.Store.Orders.AddItem(c.Param("id"), input.toModel())
	if err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (oc *OrderController) UpdateOrderItem(c *gin.Context) {
	var input OrderItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	item := input.toModel()
	item.ID = c.Param("itemId")

	order, err := oc.Store.Orders.UpdateItem(c.Param("id"), item)
	if err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) DeleteOrderItem(c *gin.Context) {
	order, err := oc.Store.Orders.RemoveItem(c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
