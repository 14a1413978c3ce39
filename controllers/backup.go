package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tailorbook-backend/services"
	"tailorbook-backend/utils"
)

type BackupController struct {
	Backups *services.BackupService
}

func (bc *BackupController) GetBackupStatus(c *gin.Context) {
	c.JSON(http.StatusOK, bc.Backups.Status())
}

func (bc *BackupController) RunBackup(c *gin.Context) {
	snap, err := bc.Backups.RunBackup(c.Request.Context(), services.TriggerManual)
	if errors.Is(err, services.ErrBackupsDisabled) {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Backups are not configured")
		return
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":            snap.ID,
		"takenAt":       snap.TakenAt,
		"customerCount": snap.CustomerCount,
		"orderCount":    snap.OrderCount,
	})
}
