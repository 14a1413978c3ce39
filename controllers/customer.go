package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tailorbook-backend/models"
	"tailorbook-backend/store"
	"tailorbook-backend/utils"
)

// CustomerInput is the customer form. The id always comes from the URL.
type CustomerInput struct {
	Name         string              `json:"name" binding:"required"`
	Phone        string              `json:"phone" binding:"required"`
	Email        string              `json:"email" binding:"omitempty,email"`
	LastVisit    string              `json:"lastVisit" binding:"omitempty,datetime=2006-01-02"`
	Notes        string              `json:"notes"`
	Measurements models.Measurements `json:"measurements"`
}

func (in CustomerInput) toModel() models.Customer {
	return models.Customer{
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		LastVisit:    in.LastVisit,
		Notes:        in.Notes,
		Measurements: in.Measurements,
	}
}

type CustomerController struct {
	Store *store.Store
	Now   func() time.Time
}

func NewCustomerController(st *store.Store) *CustomerController {
	return &CustomerController{Store: st, Now: time.Now}
}

// CreateCustomer adds a customer. lastVisit defaults to today.
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := input.toModel()
	if customer.LastVisit == "" {
		customer.LastVisit = utils.FormatDate(cc.Now())
	}
	customer = cc.Store.Customers.Add(customer)
	c.JSON(http.StatusCreated, customer)
}

// GetCustomers lists customers, filtered by ?search= when present.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers := cc.Store.Customers.Search(strings.TrimSpace(c.Query("search")))
	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customer, err := cc.Store.Customers.Get(c.Param("id"))
	if err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer replaces the whole record.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id := c.Param("id")
	existing, err := cc.Store.Customers.Get(id)
	if err != nil {
		respondWithStoreError(c, err)
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := input.toModel()
	customer.ID = id
	if customer.LastVisit == "" {
		customer.LastVisit = existing.LastVisit
	}
	customer, err = cc.Store.Customers.Update(customer)
	if err != nil {
		respondWithStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes the customer. Its orders stay and keep their
// snapshot of the name and phone.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	if err := cc.Store.Customers.Delete(id); err != nil {
		respondWithStoreError(c, err)
		return
	}

	referencing := cc.Store.Orders.CountByCustomer(id)
	if referencing > 0 {
		log.Printf("[STORE] customer %s deleted, %d orders still reference it", id, referencing)
	}
	c.JSON(http.StatusOK, gin.H{
		"message":           "Customer deleted successfully",
		"referencingOrders": referencing,
	})
}

// GetCustomerOrders lists orders by customer id. Orders of a deleted
// customer are still returned.
func (cc *CustomerController) GetCustomerOrders(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Store.Orders.ListByCustomer(c.Param("id")))
}
