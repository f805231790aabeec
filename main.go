package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Acelogic/Maginator/config"
	_ "github.com/Acelogic/Maginator/docs"
	"github.com/Acelogic/Maginator/internal/alphavantage"
	"github.com/Acelogic/Maginator/internal/cache"
	"github.com/Acelogic/Maginator/internal/handlers"
	"github.com/Acelogic/Maginator/internal/middleware"
	"github.com/Acelogic/Maginator/internal/roundhill"
	"github.com/Acelogic/Maginator/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Maginator API
// @version 1.0
// @description MAGS ETF holdings scraper, live quotes and NAV projection service.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure logging
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid LOG_LEVEL: %v", err)
	}
	logrus.SetLevel(level)

	// Initialize AlphaVantage client
	avClient := alphavantage.NewClient(cfg.AVKey)

	// Initialize cache
	memCache := cache.NewMemoryCache(cfg.HoldingsTTL, cfg.QuotesTTL)

	// Initialize scrape strategies
	browser := roundhill.NewBrowserStrategy(cfg.HoldingsURL, cfg.BrowserTimeout)
	plain := roundhill.NewHTTPStrategy(cfg.HoldingsURL, cfg.HTTPTimeout)

	// Initialize services
	holdingsSvc := services.NewHoldingsService(memCache, browser, plain, cfg.FetchMethod)
	quoteSvc := services.NewQuoteService(memCache, avClient)

	// Initialize handlers
	fundHandler := handlers.NewFundHandler(holdingsSvc)
	quoteHandler := handlers.NewQuoteHandler(quoteSvc)
	projectionHandler := handlers.NewProjectionHandler(holdingsSvc, quoteSvc)
	refreshHandler := handlers.NewRefreshHandler(holdingsSvc, quoteSvc)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api")
	api.GET("/fund", fundHandler.GetFund)
	api.GET("/quotes", quoteHandler.GetQuotes)
	api.POST("/projection", projectionHandler.Project)
	api.POST("/refresh", refreshHandler.Refresh)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	fmt.Println("Server exited")
}
