package routes

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tailorbook-backend/config"
	"tailorbook-backend/controllers"
	"tailorbook-backend/services"
	"tailorbook-backend/store"
	"tailorbook-backend/utils"
)

// Deps is everything the router hands to the controllers.
type Deps struct {
	Config    config.Config
	Store     *store.Store
	Reminders *services.ReminderService
	Backups   *services.BackupService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	origins := d.Config.CORSOrigins
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(origins, origin)
		},
	}))

	r.Use(config.PerformanceLogger(d.Config.SlowRequest))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if d.Config.AuthEnabled() {
		authController := &controllers.AuthController{
			OwnerEmail:        d.Config.OwnerEmail,
			OwnerPasswordHash: d.Config.OwnerPasswordHash,
			Secret:            d.Config.JWTSecret,
			Expiry:            d.Config.JWTExpiry,
		}
		auth := r.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.GET("/me", utils.AuthMiddleware(d.Config.JWTSecret), authController.Me)
		}
		api.Use(utils.AuthMiddleware(d.Config.JWTSecret))
	}
	{
		// Customer routes
		customerController := controllers.NewCustomerController(d.Store)
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
			customers.GET("/:id/orders", customerController.GetCustomerOrders)
		}

		// Order routes
		orderController := controllers.NewOrderController(d.Store)
		orders := api.Group("/orders")
		{
			orders.POST("", orderController.CreateOrder)
			orders.GET("", orderController.GetOrders)
			orders.GET("/stats", orderController.GetOrderStats)
			orders.GET("/:id", orderController.GetOrder)
			orders.PUT("/:id", orderController.UpdateOrder)
			orders.DELETE("/:id", orderController.DeleteOrder)
			orders.PATCH("/:id/status", orderController.UpdateOrderStatus)
			orders.PUT("/:id/advance", orderController.UpdateOrderAdvance)
			orders.POST("/:id/items", orderController.AddOrderItem)
			orders.PUT("/:id/items/:itemId", orderController.UpdateOrderItem)
			orders.DELETE("/:id/items/:itemId", orderController.DeleteOrderItem)
		}

		// Dashboard and reports
		dashboardController := controllers.NewDashboardController(d.Store)
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
		reportController := controllers.NewReportController(d.Store)
		api.GET("/reports", reportController.GetReportAnalytics)

		// Settings routes
		settingsController := controllers.NewSettingsController(d.Store, d.Backups)
		api.GET("/settings", settingsController.GetSettings)
		api.PUT("/settings", settingsController.UpdateSettings)

		reminderController := &controllers.ReminderController{Reminders: d.Reminders}
		api.GET("/reminders", reminderController.GetReminderLogs)
		api.POST("/reminders/run", reminderController.RunReminders)

		backupController := &controllers.BackupController{Backups: d.Backups}
		api.GET("/backups", backupController.GetBackupStatus)
		api.POST("/backups/run", backupController.RunBackup)
	}

	return r
}
