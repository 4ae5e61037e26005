package routes

import (
	"net/http"

	"backoffice-backend/config"
	"backoffice-backend/controllers"
	"backoffice-backend/models"
	"backoffice-backend/repository"
	"backoffice-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", utils.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.Use(utils.RequestID())
	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	verifier := utils.NewTokenVerifier(cfg.JWTSecret)

	configurationController := controllers.NewConfigurationController(repository.New[models.BusinessConfiguration](db))
	productController := controllers.NewProductController(repository.New[models.Product](db))
	reservationRepo := repository.NewReservationRepository(db)
	financeController := controllers.NewFinanceController(repository.NewFinanceRepository(db), reservationRepo)
	reservationController := controllers.NewReservationController(reservationRepo)

	api := r.Group("/")
	api.Use(utils.AuthMiddleware(verifier))
	{
		// Configuration routes
		configuration := api.Group("/configuration")
		{
			configuration.GET("", configurationController.GetConfigurations)
			configuration.GET("/:id", configurationController.GetConfiguration)
			configuration.POST("", configurationController.CreateConfiguration)
			configuration.PATCH("/:id", configurationController.UpdateConfiguration)
			configuration.DELETE("/:id", configurationController.DeleteConfiguration)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productController.GetProducts)
			products.GET("/:id", productController.GetProduct)
			products.POST("", productController.CreateProduct)
			products.PATCH("/:id", productController.UpdateProduct)
			products.DELETE("/:id", productController.DeleteProduct)
		}

		// Finance routes
		finances := api.Group("/finances")
		{
			finances.GET("", financeController.GetFinances)
			finances.GET("/anual_finances/:year", financeController.GetAnnualFinances)
			finances.GET("/:id", financeController.GetFinance)
			finances.POST("", financeController.CreateFinance)
			finances.PATCH("/:id", financeController.UpdateFinance)
			finances.DELETE("/:id", financeController.DeleteFinance)
		}

		// Reservation routes
		reservations := api.Group("/reservations")
		{
			reservations.GET("", reservationController.GetReservations)
			reservations.GET("/:id", reservationController.GetReservation)
			reservations.POST("", reservationController.CreateReservation)
			reservations.PATCH("/:id", reservationController.UpdateReservation)
			reservations.DELETE("/:id", reservationController.DeleteReservation)
		}
	}

	return r
}
