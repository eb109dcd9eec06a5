package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskmate/config"
	_ "taskmate/docs" // Swagger docs
	"taskmate/internal/httpserver"
	"taskmate/pkg/gcalendar"
	"taskmate/pkg/llmprovider"
	"taskmate/pkg/log"
	"taskmate/pkg/mailer"
	"taskmate/pkg/postgre"
	"taskmate/pkg/scope"
)

// @title       TaskMate API
// @description Personal task management with natural language input, categories, and summaries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskMate...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := postgre.Connect(postgre.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DBName:   cfg.Postgres.DBName,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()

	if err := postgre.Migrate(db); err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}
	logger.Info(ctx, "Database ready")

	// 4. Model gateway
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize model providers: ", err)
		return
	}
	gateway := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelayDuration(),
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
	}, logger)
	logger.Infof(ctx, "Model gateway ready with %d provider(s)", len(providers))

	// 5. Google Calendar (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Mailer (optional, password reset mail is skipped without it)
	var m mailer.Mailer
	if cfg.SMTP.Host != "" {
		m = mailer.New(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	} else {
		logger.Warn(ctx, "SMTP not configured, password reset mail disabled")
	}

	// 7. JWT manager
	if cfg.Auth.JWTSecret == "" {
		logger.Error(ctx, "auth.jwt_secret is required")
		return
	}
	jwtManager := scope.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		JWTManager:  jwtManager,
		Gateway:     gateway,
		Calendar:    calendarClient,
		Mailer:      m,
		Auth:        cfg.Auth,
		CORS:        cfg.CORS,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
