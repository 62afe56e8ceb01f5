package routes

import (
	"github.com/gin-gonic/gin"

	"gamevault/controllers"
	"gamevault/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine) {
	// Public routes (no authentication required)
	public := r.Group("/api")
	{
		public.POST("/auth/login", controllers.Login)

		// Catalog browsing is public; mutation is not
		public.GET("/games", controllers.GetAllGames)
		public.GET("/games/:id", controllers.GetGame)
	}

	// Protected routes (authentication required)
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", controllers.GetProfile)

		// Catalog CRUD: managers are the single role granted these operations
		games := protected.Group("/games")
		games.Use(middleware.CatalogAuthMiddleware())
		{
			games.POST("", controllers.CreateGame)
			games.PUT("/:id", controllers.UpdateGame)
			games.DELETE("/:id", controllers.DeleteGame)
			games.POST("/:id/restock", controllers.RestockGame)
		}

		// Sales are recorded by any staff member
		protected.POST("/games/:id/sale", middleware.StaffAuthMiddleware(), controllers.RecordSale)

		// Customers and addresses
		customers := protected.Group("/customers")
		customers.Use(middleware.StaffAuthMiddleware())
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetAllCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.GET("/:id/invoices", controllers.GetCustomerInvoices)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		addresses := protected.Group("/addresses")
		addresses.Use(middleware.StaffAuthMiddleware())
		{
			addresses.POST("", controllers.CreateAddress)
			addresses.DELETE("/:id", controllers.DeleteAddress)
		}

		// Invoices are immutable once created: no update or delete routes
		invoices := protected.Group("/invoices")
		invoices.Use(middleware.StaffAuthMiddleware())
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.POST("/:id/payment-order", controllers.CreateInvoicePaymentOrder)
		}

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.POST("/users", controllers.Register)
			admin.GET("/audit-log", controllers.GetAuditLog)
			admin.POST("/employees", controllers.CreateEmployee)
			admin.POST("/employees/:id/pay-rates", controllers.AssignPayRate)
			admin.POST("/employees/:id/pay-rates/end", controllers.EndPayRate)
		}

		// Employee directory and reports
		employees := protected.Group("/employees")
		employees.Use(middleware.ManagerOrAdminAuthMiddleware())
		{
			employees.GET("", controllers.GetAllEmployees)
			employees.GET("/:id", controllers.GetEmployee)
		}

		reports := protected.Group("/reports")
		reports.Use(middleware.ManagerOrAdminAuthMiddleware())
		{
			reports.GET("/game-sales", controllers.GetGameSalesReport)
			reports.GET("/employee-payments", controllers.GetEmployeePaymentHistory)
		}
	}
}
