package main

import (
	"log"
	"time"

	"pharma-pos/internal/auth"
	"pharma-pos/internal/config"
	"pharma-pos/internal/database"
	"pharma-pos/internal/handlers"
	"pharma-pos/internal/middleware"
	"pharma-pos/internal/pos"
	"pharma-pos/internal/settings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DBDSN)
	if err != nil {
		logger.Fatal("database open failed", zap.Error(err))
	}
	if err := database.Seed(db); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	tokens := auth.NewTokens(cfg.JWTSecret)
	settingsSvc := settings.NewService(db)

	authHandler := handlers.NewAuthHandler(db, tokens, logger)
	productHandler := handlers.NewProductHandler(db, settingsSvc, logger)
	posHandler := handlers.NewPOSHandler(db, settingsSvc, pos.NewProcessor(db, logger), logger)
	reportHandler := handlers.NewReportHandler(db, logger)
	settingsHandler := handlers.NewSettingsHandler(db, settingsSvc, logger)
	userHandler := handlers.NewUserHandler(db, logger)
	systemHandler := handlers.NewSystemHandler(db, logger)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", authHandler.Login)

	// Only opens if we explicitly allow it in .env
	if cfg.AllowRegistration {
		r.POST("/register", authHandler.Register)
		logger.Warn("registration route is OPEN, disable this in production")
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(tokens))
	{
		products := api.Group("/products")
		{
			products.GET("", middleware.RequireAction(auth.ActionViewProducts), productHandler.List)
			products.GET("/scan/:barcode", middleware.RequireAction(auth.ActionViewProducts), productHandler.Scan)
			products.GET("/alerts", middleware.RequireAction(auth.ActionViewProducts), productHandler.Alerts)
			products.POST("", middleware.RequireAction(auth.ActionManageProducts), productHandler.Create)
			products.PUT("/:id", middleware.RequireAction(auth.ActionManageProducts), productHandler.Update)
			products.DELETE("/:id", middleware.RequireAction(auth.ActionDeleteProducts), productHandler.Delete)
		}

		posRoutes := api.Group("/pos")
		{
			sell := middleware.RequireAction(auth.ActionSell)
			posRoutes.GET("/cart", sell, posHandler.GetCart)
			posRoutes.POST("/cart/items", sell, posHandler.AddItem)
			posRoutes.PATCH("/cart/items/:id", sell, posHandler.AdjustItem)
			posRoutes.DELETE("/cart/items/:id", sell, posHandler.RemoveItem)
			posRoutes.POST("/checkout", sell, posHandler.Checkout)

			hold := middleware.RequireAction(auth.ActionHoldSale)
			posRoutes.POST("/hold", hold, posHandler.Hold)
			posRoutes.GET("/held", hold, posHandler.ListHeld)
			posRoutes.POST("/held/:id/resume", hold, posHandler.Resume)
		}

		reports := api.Group("/reports", middleware.RequireAction(auth.ActionViewReports))
		{
			reports.GET("", reportHandler.GetSalesReport)
			reports.GET("/valuation", reportHandler.GetStockValuation)
			reports.GET("/narcotics", reportHandler.GetNarcoticRegister)
		}

		api.GET("/settings", middleware.RequireAction(auth.ActionViewSettings), settingsHandler.List)
		api.PUT("/settings", middleware.RequireAction(auth.ActionManageSettings), settingsHandler.Update)

		users := api.Group("/users", middleware.RequireAction(auth.ActionManageUsers))
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Create)
			users.PUT("/:id/status", userHandler.UpdateStatus)
		}

		api.GET("/audit", middleware.RequireAction(auth.ActionViewAudit), userHandler.AuditTrail)

		api.GET("/system/status", systemHandler.Status)
		api.GET("/system/backup", middleware.RequireAction(auth.ActionExportBackup), systemHandler.Backup)
	}

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}

func newLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
