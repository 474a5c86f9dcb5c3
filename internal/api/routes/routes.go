package routes

import (
	"rental-backend/internal/api/handlers"
	"rental-backend/internal/api/middleware"
	"rental-backend/internal/repository"
	"rental-backend/internal/services"
	"rental-backend/pkg/cache"
	"rental-backend/pkg/redis"
	"rental-backend/pkg/vehiclelock"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, redisClient *redis.Client) {
	// Initialize repositories
	sequenceRepo := repository.NewSequenceRepository(db)
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db, sequenceRepo)
	customerRepo := repository.NewCustomerRepository(db, sequenceRepo)
	employeeRepo := repository.NewEmployeeRepository(db, sequenceRepo)
	rentalRepo := repository.NewRentalRepository(db, sequenceRepo)
	maintenanceRepo := repository.NewMaintenanceRepository(db, sequenceRepo)
	incidentRepo := repository.NewIncidentRepository(db, sequenceRepo)

	// Shared lifecycle infrastructure
	locks := vehiclelock.NewTable()
	conflicts := services.NewConflictDetector(rentalRepo, maintenanceRepo)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	vehicleService := services.NewVehicleService(vehicleRepo)
	customerService := services.NewCustomerService(customerRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	rentalService := services.NewRentalService(rentalRepo, vehicleRepo, customerRepo, employeeRepo, conflicts, locks)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, vehicleRepo, conflicts, locks)
	fleetStateService := services.NewFleetStateService(vehicleRepo, rentalRepo, maintenanceRepo)
	incidentService := services.NewIncidentService(incidentRepo, rentalRepo)
	reportService := services.NewReportService(rentalRepo, customerRepo, vehicleRepo)

	// Wire the cache when Redis is reachable; the services fall back to
	// the repositories on their own when it is not.
	if redisClient != nil && redisClient.IsConnected() {
		cacheManager := cache.NewRedisCacheManager(redisClient, cache.DefaultCacheConfig())
		vehicleService.SetCacheManager(cacheManager)
		rentalService.SetCacheManager(cacheManager)
		fleetStateService.SetCacheManager(cacheManager)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	rentalHandler := handlers.NewRentalHandler(rentalService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	fleetStateHandler := handlers.NewFleetStateHandler(fleetStateService)
	incidentHandler := handlers.NewIncidentHandler(incidentService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(db, redisClient)

	// API routes
	api := router.Group("/api/v1")

	api.GET("/health", healthHandler.HealthCheck)

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/register", authHandler.Register)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authHandler.GetProfile)

		// Vehicles
		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.GetVehicles)
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
			vehicles.PATCH("/:id", vehicleHandler.UpdateVehicle)
			vehicles.PATCH("/:id/deactivate", vehicleHandler.DeactivateVehicle)
			vehicles.PATCH("/:id/activate", vehicleHandler.ActivateVehicle)
			vehicles.GET("/:id/status", fleetStateHandler.GetVehicleStatus)
			vehicles.GET("/:id/maintenance", maintenanceHandler.GetVehicleMaintenance)
			vehicles.GET("/:id/rentals", reportHandler.GetVehicleRentals)
		}

		// Customers
		customers := protected.Group("/customers")
		{
			customers.GET("", customerHandler.GetCustomers)
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.PATCH("/:id", customerHandler.UpdateCustomer)
			customers.PATCH("/:id/deactivate", customerHandler.DeactivateCustomer)
			customers.PATCH("/:id/activate", customerHandler.ActivateCustomer)
			customers.GET("/:id/rentals", reportHandler.GetCustomerRentals)
		}

		// Employees (staff management is for admins and managers)
		employees := protected.Group("/employees")
		employees.Use(middleware.RequireRole("admin", "manager"))
		{
			employees.GET("", employeeHandler.GetEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PATCH("/:id", employeeHandler.UpdateEmployee)
			employees.PATCH("/:id/deactivate", employeeHandler.DeactivateEmployee)
			employees.PATCH("/:id/activate", employeeHandler.ActivateEmployee)
		}

		// Rentals
		rentals := protected.Group("/rentals")
		{
			rentals.GET("", rentalHandler.GetRentals)
			rentals.POST("", rentalHandler.OpenRental)
			rentals.GET("/:id", rentalHandler.GetRental)
			rentals.PATCH("/:id/close", rentalHandler.CloseRental)
			rentals.GET("/:id/incidents", incidentHandler.GetRentalIncidents)
			rentals.GET("/:id/pending-amount", incidentHandler.GetRentalPendingAmount)
		}

		// Maintenance
		maintenance := protected.Group("/maintenance")
		{
			maintenance.GET("", maintenanceHandler.GetMaintenanceWindows)
			maintenance.POST("", maintenanceHandler.ScheduleMaintenance)
			maintenance.GET("/:id", maintenanceHandler.GetMaintenanceWindow)
			maintenance.DELETE("/:id", maintenanceHandler.CancelMaintenance)
		}

		// Incidents
		incidents := protected.Group("/incidents")
		{
			incidents.GET("", incidentHandler.GetIncidents)
			incidents.POST("", incidentHandler.CreateIncident)
			incidents.GET("/:id", incidentHandler.GetIncident)
			incidents.PATCH("/:id/pay", incidentHandler.MarkIncidentPaid)
		}

		// Fleet state and reports
		fleet := protected.Group("/fleet")
		{
			fleet.GET("/snapshot", fleetStateHandler.GetFleetSnapshot)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/rentals", reportHandler.GetRentalsInRange)
			reports.GET("/billing", reportHandler.GetBilledTotal)
		}
	}
}
