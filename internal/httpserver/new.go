package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smart-todo/internal/todo"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/llmprovider"
	"smart-todo/pkg/log"
	"smart-todo/pkg/scope"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *gorm.DB

	// Domain dependencies
	parser     *datemath.Parser
	jwtManager scope.Manager
	aiPerMin   int
	llm        llmprovider.Generator
	offline    bool
	calendar   todo.CalendarSync
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB         *gorm.DB
	Parser     *datemath.Parser
	JWTManager scope.Manager

	// AIPerMin caps extract and analyze calls per owner. Zero disables it.
	AIPerMin int

	// LLM serves the extractor and the narrator unless Offline is set, in
	// which case both run on local rules.
	LLM     llmprovider.Generator
	Offline bool

	// Calendar is optional.
	Calendar todo.CalendarSync
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
		db:          cfg.DB,
		parser:      cfg.Parser,
		jwtManager:  cfg.JWTManager,
		aiPerMin:    cfg.AIPerMin,
		llm:         cfg.LLM,
		offline:     cfg.Offline,
		calendar:    cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.parser == nil {
		return errors.New("date parser is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.llm == nil && !srv.offline {
		return errors.New("llm generator is required unless offline")
	}
	return nil
}

// Handler maps every route and returns the engine. Run calls it; tests use
// it directly.
func (srv HTTPServer) Handler() (http.Handler, error) {
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	return srv.gin, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv HTTPServer) Run(ctx context.Context) error {
	h, err := srv.Handler()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
