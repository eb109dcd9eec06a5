package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"taskmate/config"
	"taskmate/internal/ai"
	"taskmate/pkg/gcalendar"
	"taskmate/pkg/log"
	"taskmate/pkg/mailer"
	"taskmate/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	jwtManager *scope.Manager
	gateway    ai.Gateway
	calendar   *gcalendar.Client
	mailer     mailer.Mailer

	authCfg config.AuthConfig
	corsCfg config.CORSConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	JWTManager *scope.Manager
	Gateway    ai.Gateway
	Calendar   *gcalendar.Client
	Mailer     mailer.Mailer

	Auth config.AuthConfig
	CORS config.CORSConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		jwtManager:  cfg.JWTManager,
		gateway:     cfg.Gateway,
		calendar:    cfg.Calendar,
		mailer:      cfg.Mailer,
		authCfg:     cfg.Auth,
		corsCfg:     cfg.CORS,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.gateway == nil {
		return errors.New("model gateway is required")
	}
	return nil
}
