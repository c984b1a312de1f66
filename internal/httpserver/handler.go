package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ai-task-planner/internal/middleware"
	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/validation"
)

const apiPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers() error {
	if err := validation.Register(); err != nil {
		return err
	}

	mw := middleware.New(srv.l, srv.jwtManager, middleware.Config{
		CORS:      srv.cors,
		RateLimit: srv.rateLimit,
		Metrics:   srv.metrics,
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.CORS())
	if srv.metrics != nil {
		srv.gin.Use(mw.Metrics())
	}
	if srv.mode != gin.TestMode {
		srv.gin.Use(mw.AccessLog())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.cors.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group(apiPrefix)

	srv.setupAuthDomain(ctx, api, mw)
	notifUC := srv.setupNotificationDomain(ctx, api, mw)
	taskUC := srv.setupTaskDomain(ctx, api, mw, notifUC)
	srv.setupAIDomain(ctx, api, mw, taskUC)

	return nil
}
