package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sdejt/planaula-backend/internal/handlers"
	"github.com/sdejt/planaula-backend/internal/middleware"
)

type RouterConfig struct {
	PlanHandler   *handlers.PlanHandler
	RequestLogger *middleware.RequestLogger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cfg.RequestLogger.Handle())

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/plans/generate", cfg.PlanHandler.GeneratePlan)
		api.GET("/plans", cfg.PlanHandler.ListPlans)
		api.GET("/plans/:id/pdf", cfg.PlanHandler.GetPlanPDF)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/plans/:id/pdf", cfg.PlanHandler.GetPlanPDFAdmin)
	}

	return router
}
