package routes

import (
	"barberpos-backend/config"
	"barberpos-backend/controllers"
	"barberpos-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())
	r.Use(config.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Attendance routes (all staff)
		attendance := api.Group("/attendance")
		{
			attendance.GET("", controllers.GetMyAttendance)
			attendance.POST("/check-in", controllers.CheckIn)
			attendance.POST("/check-out", controllers.CheckOut)
		}

		// Catalog lookups for the register (all staff)
		api.GET("/services", controllers.GetServices)
		api.GET("/services/:id", controllers.GetService)
		api.GET("/discounts/active", controllers.GetActiveDiscounts)
		api.GET("/customers", controllers.GetCustomers)

		// Sales
		api.POST("/sales", controllers.CreateSale)
		api.GET("/sales/:id", controllers.GetSale)
		api.GET("/my-transactions", controllers.GetMyTransactions)

		admin := api.Group("")
		admin.Use(utils.AdminOnly())
		{
			// Catalog management
			admin.POST("/services", controllers.CreateService)
			admin.PUT("/services/:id", controllers.UpdateService)
			admin.DELETE("/services/:id", controllers.DeleteService)

			// Discount rules
			admin.POST("/discounts", controllers.CreateDiscount)
			admin.GET("/discounts", controllers.GetDiscounts)
			admin.PUT("/discounts/:id", controllers.UpdateDiscount)
			admin.DELETE("/discounts/:id", controllers.DeleteDiscount)

			// Customer management
			admin.POST("/customers", controllers.CreateCustomer)
			admin.GET("/customers/:id", controllers.GetCustomer)
			admin.PUT("/customers/:id", controllers.UpdateCustomer)
			admin.DELETE("/customers/:id", controllers.DeleteCustomer)

			// Transaction ledger
			admin.GET("/transactions", controllers.GetTransactions)
			admin.PUT("/transactions/:id", controllers.UpdateTransaction)
			admin.DELETE("/transactions/:id", controllers.DeleteTransaction)

			// Attendance oversight & reports
			admin.GET("/attendance/today", controllers.GetTodayAttendance)
			admin.GET("/reports/attendance", controllers.GetAttendanceReport)
			admin.GET("/dashboard", controllers.GetDashboardOverview)

			// Staff management
			staff := admin.Group("/staff")
			{
				staff.GET("", controllers.GetStaff)
				staff.POST("", controllers.AddStaff)
				staff.PUT("/:id", controllers.UpdateStaff)
				staff.DELETE("/:id", controllers.DeleteStaff)
			}
		}
	}

	return r
}
