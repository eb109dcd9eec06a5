package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	aiHTTP "taskmate/internal/ai/delivery/http"
	aiUC "taskmate/internal/ai/usecase"
	categoryHTTP "taskmate/internal/category/delivery/http"
	categoryRepo "taskmate/internal/category/repository/postgre"
	categoryUC "taskmate/internal/category/usecase"
	"taskmate/internal/middleware"
	taskHTTP "taskmate/internal/task/delivery/http"
	taskRepo "taskmate/internal/task/repository/postgre"
	taskUC "taskmate/internal/task/usecase"
	userHTTP "taskmate/internal/user/delivery/http"
	userRepo "taskmate/internal/user/repository/postgre"
	userUC "taskmate/internal/user/usecase"
)

// setupDomains initializes every domain and registers its routes.
//
// Pattern per domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
//
// Order matters: the task use case needs the category use case, and the
// AI use case needs both.
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Category domain
	catRepo := categoryRepo.New(srv.postgresDB, srv.l)
	catUC := categoryUC.New(catRepo, srv.l)
	catHandler := categoryHTTP.New(srv.l, catUC)
	categoryHTTP.RegisterRoutes(api, catHandler, mw)
	srv.l.Infof(ctx, "Category domain registered")

	// Task domain
	tRepo := taskRepo.New(srv.postgresDB, srv.l)
	tUC := taskUC.New(srv.l, tRepo, catUC, srv.calendar)
	tHandler := taskHTTP.New(srv.l, tUC)
	taskHTTP.RegisterRoutes(api, tHandler, mw)
	srv.l.Infof(ctx, "Task domain registered")

	// AI domain
	assistantUC := aiUC.New(srv.l, srv.gateway, tUC, catUC)
	assistantHandler := aiHTTP.New(srv.l, assistantUC)
	aiHTTP.RegisterRoutes(api, assistantHandler, mw)
	srv.l.Infof(ctx, "AI domain registered")

	// User domain
	uRepo := userRepo.New(srv.postgresDB, srv.l)
	uUC := userUC.New(srv.l, uRepo, srv.jwtManager, srv.mailer, srv.authCfg.ResetTokenTTL)
	uHandler := userHTTP.New(srv.l, uUC, srv.authCfg)
	userHTTP.RegisterRoutes(api, uHandler, mw)
	srv.l.Infof(ctx, "User domain registered")

	if srv.authCfg.SeedAdmin {
		if err := uUC.EnsureAdmin(ctx, srv.authCfg.AdminEmail, srv.authCfg.AdminUsername, srv.authCfg.AdminPassword); err != nil {
			return fmt.Errorf("failed to seed admin account: %w", err)
		}
		srv.l.Infof(ctx, "Admin account ensured for %s", srv.authCfg.AdminEmail)
	}

	return nil
}
