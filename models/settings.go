package models

// ShopSettings holds the shop profile and preferences.
type ShopSettings struct {
	ShopName        string `json:"shopName"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	BackupFrequency string `json:"backupFrequency"` // daily, weekly, monthly
	Currency        string `json:"currency"`
	MeasurementUnit string `json:"measurementUnit"` // inches, centimeters
}

func DefaultSettings() ShopSettings {
	return ShopSettings{
		ShopName:        "My Tailoring Shop",
		Address:         "123 Fashion Street, Style City",
		Phone:           "555-789-0123",
		Email:           "contact@tailoringshop.com",
		BackupFrequency: "daily",
		Currency:        "INR",
		MeasurementUnit: "inches",
	}
}
