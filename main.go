package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/routes"
	"barberpos-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.LoadTimezone()
	config.ConnectDB()
	config.InitMetrics()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Attendance{},
		&models.Service{},
		&models.DiscountRule{},
		&models.Customer{},
		&models.Transaction{},
		&models.TransactionItem{},
	)

	if err := bootstrapAdmin(); err != nil {
		log.Fatalf("Failed to bootstrap admin: %v", err)
	}
}

func main() {
	attendance := services.NewAttendanceService(config.DB, config.Loc, config.GetLogger())
	attendance.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// bootstrapAdmin creates the initial admin account from env variables
// if no user with that username exists yet.
func bootstrapAdmin() error {
	username := config.AdminUsername()

	var existing models.User
	err := config.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.User{
		Name:         config.AdminName(),
		Username:     username,
		Password:     config.AdminPassword(),
		Role:         models.RoleAdmin,
		IsActiveUser: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Admin created:", username)
	return nil
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
