package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/ai"
	aiHTTP "ai-task-planner/internal/ai/delivery/http"
	aiUC "ai-task-planner/internal/ai/usecase"
	authHTTP "ai-task-planner/internal/auth/delivery/http"
	authRepo "ai-task-planner/internal/auth/repository/postgre"
	authUC "ai-task-planner/internal/auth/usecase"
	"ai-task-planner/internal/middleware"
	"ai-task-planner/internal/notification"
	notifHTTP "ai-task-planner/internal/notification/delivery/http"
	notifRepo "ai-task-planner/internal/notification/repository/postgre"
	notifUC "ai-task-planner/internal/notification/usecase"
	"ai-task-planner/internal/task"
	taskHTTP "ai-task-planner/internal/task/delivery/http"
	taskRepo "ai-task-planner/internal/task/repository/postgre"
	taskUC "ai-task-planner/internal/task/usecase"
)

// Each domain follows the same wiring:
//  1. Repository:   repo := xRepo.New(srv.postgresDB, srv.l)
//  2. UseCase:      uc := xUC.New(srv.l, repo, ...)
//  3. HTTP Handler: h := xHTTP.New(srv.l, uc)
//  4. Routes:       xHTTP.RegisterRoutes(api.Group("/x"), h, mw)

func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := authRepo.New(srv.postgresDB, srv.l)
	uc := authUC.New(srv.l, repo, srv.jwtManager, srv.defaultLoc.String())
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}

func (srv HTTPServer) setupNotificationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) notification.UseCase {
	repo := notifRepo.New(srv.postgresDB, srv.l)
	uc := notifUC.New(srv.l, repo, srv.metrics, srv.defaultLoc)
	h := notifHTTP.New(srv.l, uc)
	notifHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Notification domain registered")
	return uc
}

// setupTaskDomain uses the notification use case as the reminder scheduler.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, scheduler task.Scheduler) task.UseCase {
	repo := taskRepo.New(srv.postgresDB, srv.l)
	uc := taskUC.New(srv.l, repo, scheduler, srv.defaultLoc)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc
}

func (srv HTTPServer) setupAIDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks ai.TaskStore) {
	uc := aiUC.New(srv.l, srv.enhancer, tasks, aiUC.Options{
		Calendar:   srv.calendar,
		Metrics:    srv.metrics,
		DefaultLoc: srv.defaultLoc,
	})
	h := aiHTTP.New(srv.l, uc)
	aiHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "AI domain registered")
}
