// models/reminder_log.go
package models

import "time"

type ReminderLog struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Type         string    `json:"type"` // ready, due
	Message      string    `json:"message"`
	Status       string    `json:"status"` // sent, failed, skipped
	ErrorMessage string    `json:"errorMessage,omitempty"`
	Channel      string    `json:"channel"` // whatsapp, sms, log
	SentAt       time.Time `json:"sentAt"`
}
