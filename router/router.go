package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/controllers"
	"github.com/sparklean/cleaning-app/middlewares"
	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/repositories"
	"github.com/sparklean/cleaning-app/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Wire the order lifecycle stack
	orderRepo := repositories.NewOrderRepository(db)
	bundleRepo := repositories.NewBundleRepository(db)
	cleanerRepo := repositories.NewCleanerRepository(db)
	cleanerService := services.NewCleanerService(cleanerRepo, services.NewDayWindowPolicy())
	orderService := services.NewOrderService(orderRepo, bundleRepo, cleanerService, services.NewSMTPSenderFromEnv())

	// Inisialisasi controller
	authCtrl := controllers.NewAuthController(db)
	clientCtrl := controllers.NewClientController(db)
	cleanerCtrl := controllers.NewCleanerController(db)
	bundleCtrl := controllers.NewBundleController(db)
	serviceCtrl := controllers.NewServiceController(db)
	objectCtrl := controllers.NewCleaningObjectController(db)
	orderCtrl := controllers.NewOrderController(db, orderService)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", authCtrl.Login)
		public.POST("/clients", clientCtrl.Register)
		public.POST("/cleaners", cleanerCtrl.Register)
	}

	// Katalog publik
	r.GET("/bundles", bundleCtrl.GetAllBundles)
	r.GET("/bundles/:bundle_id", bundleCtrl.GetBundleByID)
	r.GET("/services", serviceCtrl.GetAllServices)

	// Endpoint WebSocket dashboard operator
	opsWS := r.Group("/ops")
	opsWS.Use(middlewares.WebSocketAuthMiddleware())
	opsWS.GET("/ws", controllers.OpsHandler)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		// Orders
		auth.POST("/orders", middlewares.RequireRoles(models.RoleClient), orderCtrl.CreateOrder)
		auth.GET("/orders", middlewares.RequireRoles(), orderCtrl.GetAllOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.PUT("/orders/:order_id", middlewares.RequireRoles(), orderCtrl.UpdateOrder)
		auth.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		// Clients
		auth.GET("/clients", middlewares.RequireRoles(), clientCtrl.GetAllClients)
		auth.GET("/clients/:client_id", clientCtrl.GetClient)
		auth.PUT("/clients/:client_id", clientCtrl.UpdateClient)
		auth.DELETE("/clients/:client_id", clientCtrl.DeleteClient)

		// Cleaners
		auth.GET("/cleaners", middlewares.RequireRoles(), cleanerCtrl.GetAllCleaners)
		auth.GET("/cleaners/:cleaner_id", cleanerCtrl.GetCleaner)
		auth.DELETE("/cleaners/:cleaner_id", cleanerCtrl.DeleteCleaner)

		// Cleaning objects
		auth.POST("/cleaning-objects", middlewares.RequireRoles(models.RoleClient), objectCtrl.CreateCleaningObject)
		auth.GET("/cleaning-objects", middlewares.RequireRoles(models.RoleClient), objectCtrl.GetCleaningObjects)
		auth.DELETE("/cleaning-objects/:object_id", objectCtrl.DeleteCleaningObject)

		// Catalog administration
		auth.POST("/bundles", middlewares.RequireRoles(), bundleCtrl.CreateBundle)
		auth.PUT("/bundles/:bundle_id", middlewares.RequireRoles(), bundleCtrl.UpdateBundle)
		auth.DELETE("/bundles/:bundle_id", middlewares.RequireRoles(), bundleCtrl.DeleteBundle)
		auth.POST("/services", middlewares.RequireRoles(), serviceCtrl.CreateService)
		auth.PUT("/services/:service_id", middlewares.RequireRoles(), serviceCtrl.UpdateService)
		auth.DELETE("/services/:service_id", middlewares.RequireRoles(), serviceCtrl.DeleteService)
	}

	return r
}
