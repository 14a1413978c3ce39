// controllers/reminder.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailorbook-backend/services"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

// GetReminderLogs returns every reminder attempt since startup.
func (rc *ReminderController) GetReminderLogs(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Reminders.Logs())
}

// RunReminders runs the reminder sweep now and returns what it sent.
func (rc *ReminderController) RunReminders(c *gin.Context) {
	sent := rc.Reminders.SendDailyReminders()
	c.JSON(http.StatusOK, gin.H{
		"count":     len(sent),
		"reminders": sent,
	})
}
