package app

import (
	"time"

	"influence_survey/docs"
	"influence_survey/internal/config"
	"influence_survey/internal/middleware"
	"influence_survey/pkg/monitoring"
	"influence_survey/pkg/security"
	"influence_survey/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 问卷页面
	router.GET("/", c.survey.Index)
	router.POST("/", c.survey.Submit)

	// 2. JSON 接口
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/structure", c.question.Structure)
		api.GET("/questions", c.question.List)
		api.POST("/questions/reload", c.question.Reload)
		api.POST("/submissions", c.submission.Create)
	}
}
