package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskmate/internal/middleware"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.authCfg, srv.corsCfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS origins: %v", srv.corsCfg.AllowedOrigins)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/healthz", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(ctx context.Context, mw middleware.Middleware) error {
	api := srv.gin.Group("/api/v1")

	if err := srv.setupDomains(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
