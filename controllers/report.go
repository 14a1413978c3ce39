// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tailorbook-backend/services"
	"tailorbook-backend/store"
)

// ReportController handles all reporting functions
type ReportController struct {
	Store *store.Store
	Now   func() time.Time
}

func NewReportController(st *store.Store) *ReportController {
	return &ReportController{Store: st, Now: time.Now}
}

func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	summary := services.BuildReport(rc.Store.Customers.List(), rc.Store.Orders.List(), rc.Now())
	c.JSON(http.StatusOK, summary)
}
