package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-todo/config"
	_ "smart-todo/docs" // Swagger docs
	"smart-todo/internal/httpserver"
	"smart-todo/internal/todo"
	todoRepo "smart-todo/internal/todo/repository/sqlite"
	todoUC "smart-todo/internal/todo/usecase"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/llmprovider"
	"smart-todo/pkg/log"
	"smart-todo/pkg/scope"
	pkgSqlite "smart-todo/pkg/sqlite"
)

// @title       Smart Todo API
// @description Personal to-do list with natural-language task entry and AI productivity summaries.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
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

	logger.Info(ctx, "Starting Smart Todo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parser: anchors "today", "this week" and relative dates
	parser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}

	// 4. Task store
	db, err := pkgSqlite.Connect(cfg.Database.Path, todoRepo.Models()...)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer pkgSqlite.Close(db)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 5. Auth
	ttl, err := time.ParseDuration(cfg.JWT.TTL)
	if err != nil {
		logger.Warnf(ctx, "Invalid jwt.ttl %q, using 24h: %v", cfg.JWT.TTL, err)
		ttl = 24 * time.Hour
	}
	jwtManager := scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, ttl)

	// 6. Generative text providers
	var llm llmprovider.Generator
	if cfg.LLM.Offline {
		logger.Info(ctx, "LLM offline mode: extractor and narrator run on local rules")
	} else {
		llm = llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	}

	// 7. Google Calendar (optional)
	var calendar todo.CalendarSync
	if cfg.GoogleCalendar.CredentialsPath != "" {
		cal, calErr := gcalendar.NewFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = todoUC.NewCalendarSync(cal, cfg.GoogleCalendar.CalendarID, parser.Location())
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Parser:      parser,
		JWTManager:  jwtManager,
		AIPerMin:    cfg.RateLimit.AIPerMin,
		LLM:         llm,
		Offline:     cfg.LLM.Offline,
		Calendar:    calendar,
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
