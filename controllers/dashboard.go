package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tailorbook-backend/services"
	"tailorbook-backend/store"
)

type DashboardController struct {
	Store *store.Store
	Now   func() time.Time
}

func NewDashboardController(st *store.Store) *DashboardController {
	return &DashboardController{Store: st, Now: time.Now}
}

// GetDashboardOverview recomputes the dashboard from the current collections.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	overview := services.BuildDashboard(dc.Store.Customers.List(), dc.Store.Orders.List(), dc.Now())
	c.JSON(http.StatusOK, overview)
}
