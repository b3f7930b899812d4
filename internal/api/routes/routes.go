package routes

import (
	"space-missions-api/docs"
	"space-missions-api/internal/api/handlers"
	"space-missions-api/internal/api/middleware"
	"space-missions-api/internal/config"
	"space-missions-api/internal/logger"
	"space-missions-api/internal/repository"
	"space-missions-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	if cfg.MetricsEnabled {
		registry := newRegistry(db)
		router.Use(middleware.NewMetrics(registry).Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	}

	// Every service call runs in one transaction bound to the request context
	transactor := repository.NewTransactor(db)

	// Initialize services
	scientistService := service.NewScientistService(transactor)
	planetService := service.NewPlanetService(transactor)
	missionService := service.NewMissionService(transactor)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	scientistHandler := handlers.NewScientistHandler(scientistService)
	planetHandler := handlers.NewPlanetHandler(planetService)
	missionHandler := handlers.NewMissionHandler(missionService)

	router.GET("/", handlers.Home)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	docs.SwaggerInfo.Version = handlers.Version
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	scientists := router.Group("/scientists")
	{
		scientists.GET("", scientistHandler.ListScientists)
		scientists.POST("", scientistHandler.CreateScientist)
		scientists.GET("/:id", scientistHandler.GetScientist)
		scientists.PATCH("/:id", scientistHandler.UpdateScientist)
		scientists.DELETE("/:id", scientistHandler.DeleteScientist)
	}

	planets := router.Group("/planets")
	{
		planets.GET("", planetHandler.ListPlanets)
		planets.GET("/:id", planetHandler.GetPlanet)
		planets.DELETE("/:id", planetHandler.DeletePlanet)
	}

	missions := router.Group("/missions")
	{
		missions.POST("", missionHandler.CreateMission)
		missions.GET("/:id", missionHandler.GetMission)
	}

	return router
}

// newRegistry builds a private registry so each router owns its collectors
func newRegistry(db *gorm.DB) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if sqlDB, err := db.DB(); err == nil {
		registry.MustRegister(collectors.NewDBStatsCollector(sqlDB, db.Dialector.Name()))
	} else {
		logger.New().WithError(err).Warn("Database pool metrics unavailable")
	}

	return registry
}
