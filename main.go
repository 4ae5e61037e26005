package main

import (
	"fmt"
	"log"

	"backoffice-backend/config"
	"backoffice-backend/models"
	"backoffice-backend/repository"
	"backoffice-backend/routes"
	"backoffice-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.BusinessConfiguration{},
		&models.Product{},
		&models.FinanceRecord{},
		&models.Reservation{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.ReservationSweepEnabled {
		sweeper := services.NewReservationSweeper(repository.NewReservationRepository(db))
		if _, err := sweeper.StartScheduler(cfg.ReservationSweepSpec); err != nil {
			log.Fatalf("Failed to start reservation sweeper: %v", err)
		}
	}

	r := routes.SetupRouter(cfg, db)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
