package store

import "tailorbook-backend/models"

// SampleCustomers is the demo customer book loaded at startup.
func SampleCustomers() []models.Customer {
	return []models.Customer{
		{
			ID:        "1",
			Name:      "Priya Sharma",
			Phone:     "98765 43210",
			Email:     "priya.sharma@example.com",
			LastVisit: "2024-01-15",
			Notes:     "Prefers heavy embroidery",
			Measurements: models.Measurements{
				Body: models.BodyMeasurements{Chest: "34", Waist: "28", Hips: "36", Shoulder: "14.5", Neck: "13", ArmLength: "22"},
				Blouse: models.BlouseMeasurements{
					Length: "15", Bust: "34", Waist: "28", Shoulder: "14.5",
					SleeveLength: "10", SleeveRound: "11", Armhole: "16", FrontNeck: "7", BackNeck: "8",
				},
				Lehenga: models.LehengaMeasurements{Length: "40", Waist: "28", Hips: "36", Flare: "120"},
			},
		},
		{
			ID:        "2",
			Name:      "Anjali Patel",
			Phone:     "87654 32109",
			Email:     "anjali.p@example.com",
			LastVisit: "2024-01-20",
			Measurements: models.Measurements{
				Body: models.BodyMeasurements{Chest: "36", Waist: "30", Hips: "38", Shoulder: "15", Neck: "13.5"},
				Kurti: models.KurtiMeasurements{
					Length: "40", Bust: "36", Waist: "30", Hips: "38",
					Shoulder: "15", SleeveLength: "18", Armhole: "17", Neck: "7",
				},
				Salwar: models.SalwarMeasurements{Length: "38", Waist: "30", Hips: "38", Thigh: "22", Knee: "16", Bottom: "14"},
			},
		},
		{
			ID:        "3",
			Name:      "Maria Rodriguez",
			Phone:     "555-234-5678",
			Email:     "maria.r@example.com",
			LastVisit: "2023-04-22",
			Notes:     "Needs express alterations",
			Measurements: models.Measurements{
				Body: models.BodyMeasurements{
					Chest: "36", Waist: "28", Hips: "38", Inseam: "28", Sleeve: "23", Shoulder: "16",
					Neck: "14", ArmLength: "24", Thigh: "22", Calf: "14", TorsoLength: "27",
				},
			},
		},
		{
			ID:        "4",
			Name:      "Sarah Williams",
			Phone:     "555-456-7890",
			Email:     "sarah.w@example.com",
			LastVisit: "2023-05-05",
			Notes:     "Likes slim fit style",
			Measurements: models.Measurements{
				Body: models.BodyMeasurements{
					Chest: "34", Waist: "26", Hips: "36", Inseam: "30", Sleeve: "22", Shoulder: "15.5",
					Neck: "13", ArmLength: "23", Thigh: "20", Calf: "13", TorsoLength: "26",
				},
			},
		},
		{
			ID:        "5",
			Name:      "Meera Nair",
			Phone:     "99887 76655",
			LastVisit: "2023-12-28",
			Measurements: models.Measurements{
				Blouse: models.BlouseMeasurements{Length: "14.5", Bust: "33", Waist: "27", Shoulder: "14"},
			},
		},
	}
}

// SampleOrders returns demo orders for the first two sample customers.
func SampleOrders() []models.Order {
	orders := []models.Order{
		{
			ID:            "1",
			CustomerID:    "1",
			CustomerName:  "Priya Sharma",
			CustomerPhone: "98765 43210",
			Items: []models.OrderItem{
				{
					ID:                  "1",
					Type:                models.GarmentBlouse,
					Description:         "Silk blouse with embroidery",
					Quantity:            1,
					PricePerItem:        1500,
					Fabric:              "Silk",
					Color:               "Red",
					SpecialInstructions: "Heavy embroidery on sleeves",
				},
			},
			AdvanceAmount: 500,
			Status:        models.StatusInProgress,
			Priority:      models.PriorityHigh,
			OrderDate:     "2024-01-15",
			DueDate:       "2024-01-25",
			Notes:         "Rush order for wedding",
		},
		{
			ID:            "2",
			CustomerID:    "2",
			CustomerName:  "Anjali Patel",
			CustomerPhone: "87654 32109",
			Items: []models.OrderItem{
				{
					ID:           "2",
					Type:         models.GarmentKurti,
					Description:  "Cotton kurti",
					Quantity:     2,
					PricePerItem: 800,
					Fabric:       "Cotton",
					Color:        "Blue",
				},
			},
			AdvanceAmount: 800,
			Status:        models.StatusPending,
			Priority:      models.PriorityMedium,
			OrderDate:     "2024-01-20",
			DueDate:       "2024-02-05",
		},
	}
	for i := range orders {
		orders[i].Recalculate()
	}
	return orders
}
