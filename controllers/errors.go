package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tailorbook-backend/models"
	"tailorbook-backend/store"
	"tailorbook-backend/utils"
)

// respondWithStoreError maps store and model errors to HTTP statuses.
func respondWithStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrCustomerNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
	case errors.Is(err, store.ErrOrderNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, models.ErrItemNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Order item not found")
	case errors.Is(err, models.ErrLastItem):
		utils.RespondWithError(c, http.StatusConflict, "An order must keep at least one item")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
