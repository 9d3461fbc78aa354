package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/mastodon"
	"main/middleware"
	"main/services"
	"main/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MASTODON_BASE_URL",
		"MASTODON_ACCOUNT_ID",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}
}

func setupRouter(settings *config.Settings) *gin.Engine {
	router := gin.Default()

	// Initialize the upstream client and its collaborators
	client := mastodon.NewClient(settings)
	accountCache := services.NewAccountCache(client, settings.CacheTTL)

	memoService := &usecase.MemoService{
		Client:   client,
		Cache:    accountCache,
		Settings: settings,
	}

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	api := router.Group("/api/v1")
	{
		api.GET("/memo", middleware.CacheControlMiddleware("60"), func(c *gin.Context) {
			handler.GetMemosHandler(c, memoService)
		})
		api.GET("/memo/:id", func(c *gin.Context) {
			handler.GetMemoHandler(c, memoService)
		})
		api.GET("/status", func(c *gin.Context) {
			handler.StatusHandler(c, memoService)
		})
	}

	router.GET("/m/:id", func(c *gin.Context) {
		handler.RedirectHandler(c, memoService)
	})

	router.GET("/healthz", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Mastodon to Memos API Bridge")
	log.Printf("MASTODON_BASE_URL: %s", settings.BaseURL)
	log.Printf("MASTODON_ACCOUNT_ID: %s", settings.AccountID)
	log.Printf("UPSTREAM_FLAVOR: %s", settings.Flavor)

	router := setupRouter(settings)

	serverAddr := fmt.Sprintf(":%s", settings.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
