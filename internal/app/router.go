package app

import (
	"ap_study_backend/docs"
	"ap_study_backend/internal/config"
	"ap_study_backend/internal/middleware"
	"ap_study_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authorized.GET("/profile", c.user.GetProfile)
		authorized.PUT("/profile", c.user.UpdateProfile)

		authorized.POST("/plans/generate", c.plan.Generate)
		authorized.GET("/plans/active", c.plan.Active)
		authorized.GET("/plans", c.plan.History)

		authorized.POST("/content/generate", c.content.Generate)
		authorized.POST("/content/question-sets", c.content.QuestionSets)

		authorized.POST("/sessions", c.progress.Record)
		authorized.GET("/sessions", c.progress.History)
		authorized.GET("/sessions/insights", c.progress.Insights)

		authorized.POST("/materials/upload", c.material.Upload)
		authorized.GET("/materials", c.material.List)
	}
}
