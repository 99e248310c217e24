package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planousoapi/bootstrap"
	"planousoapi/config"
	"planousoapi/controllers"
	_ "planousoapi/docs"
	"planousoapi/pkg/logger"
	"planousoapi/services"
	"planousoapi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           planousoapi
// @version         1.0
// @description     API de recepção e consulta de Planos de Uso de equipamentos

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting Plano de Uso API with log level: %s", config.Cfg.LogLevel)

	// 3) Connect DB (GORM) and migrate
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Database is nil after ConnectDB")
	}
	if err := config.MigrateDB(); err != nil {
		log.Fatalf("MigrateDB error: %v", err)
	}

	if config.Cfg.SeedCatalog {
		if err := bootstrap.SeedCatalog(config.DB); err != nil {
			log.Fatalf("Seed catalog error: %v", err)
		}
	}

	controllers.SetPlanoService(services.NewPlanoService())
	controllers.SetCategoryService(services.NewCategoryService())
	controllers.SetCommunityTypeService(services.NewCommunityTypeService())

	// 4) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.Cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "API Planos de Uso - Funcionando!",
		})
	})

	api := router.Group("/api")
	{
		controllers.RegisterPlanoRoutes(api)
		controllers.RegisterCategoryRoutes(api)
		controllers.RegisterCommunityTypeRoutes(api)
	}

	// 5) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 6) Run with graceful shutdown
	server := &http.Server{
		Addr:    "0.0.0.0:" + config.Cfg.Port,
		Handler: router,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infof("Starting server at port %s", config.Cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-sigChan
	logger.Infof("Received shutdown signal, draining connections...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
	logger.Infof("Application shutdown complete")
}
