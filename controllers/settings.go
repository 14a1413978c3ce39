package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tailorbook-backend/models"
	"tailorbook-backend/store"
	"tailorbook-backend/utils"
)

type UpdateSettingsInput struct {
	ShopName        string `json:"shopName" binding:"required"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email" binding:"omitempty,email"`
	BackupFrequency string `json:"backupFrequency" binding:"required,oneof=daily weekly monthly"`
	Currency        string `json:"currency" binding:"required,oneof=USD EUR GBP CAD AUD INR"`
	MeasurementUnit string `json:"measurementUnit" binding:"required,oneof=inches centimeters"`
}

// BackupScheduler is told when the backup frequency changes.
type BackupScheduler interface {
	Reschedule(frequency string) error
}

type SettingsController struct {
	Store   *store.Store
	Backups BackupScheduler
}

func NewSettingsController(st *store.Store, backups BackupScheduler) *SettingsController {
	return &SettingsController{Store: st, Backups: backups}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Store.Settings.Get())
}

func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	next := models.ShopSettings{
		ShopName:        strings.TrimSpace(input.ShopName),
		Address:         input.Address,
		Phone:           input.Phone,
		Email:           input.Email,
		BackupFrequency: input.BackupFrequency,
		Currency:        input.Currency,
		MeasurementUnit: input.MeasurementUnit,
	}
	prev := sc.Store.Settings.Update(next)

	if sc.Backups != nil && prev.BackupFrequency != next.BackupFrequency {
		if err := sc.Backups.Reschedule(next.BackupFrequency); err != nil {
			log.Printf("[BACKUP] reschedule failed: %v", err)
		}
	}
	c.JSON(http.StatusOK, next)
}
