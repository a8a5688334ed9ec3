package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/analysis"
	analysisHTTP "smart-todo/internal/analysis/delivery/http"
	analysisUC "smart-todo/internal/analysis/usecase"
	"smart-todo/internal/extractor"
	extractorHTTP "smart-todo/internal/extractor/delivery/http"
	extractorUC "smart-todo/internal/extractor/usecase"
	"smart-todo/internal/middleware"
	todoHTTP "smart-todo/internal/todo/delivery/http"
	"smart-todo/internal/todo/repository"
	todoRepo "smart-todo/internal/todo/repository/sqlite"
	todoUC "smart-todo/internal/todo/usecase"
)

// setupTodoDomain wires the task store, its usecase and the /todos routes.
// The store is returned so the analysis domain can read from it.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) repository.Repository {
	repo := todoRepo.New(srv.db, srv.l)
	uc := todoUC.New(srv.l, repo, srv.calendar)
	h := todoHTTP.New(srv.l, uc, srv.parser, srv.production())
	todoHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Todo domain registered with calendar sync")
	} else {
		srv.l.Infof(ctx, "Todo domain registered")
	}
	return repo
}

func (srv HTTPServer) setupExtractorDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	var interp extractor.Interpreter
	if srv.offline {
		interp = extractorUC.NewRuleInterpreter(srv.parser)
	} else {
		interp = extractorUC.NewLLMInterpreter(srv.llm)
	}

	uc := extractorUC.New(srv.l, interp, srv.parser.Location())
	h := extractorHTTP.New(srv.l, uc, srv.production())
	extractorHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Extractor domain registered (offline=%t)", srv.offline)
}

func (srv HTTPServer) setupAnalysisDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks analysis.TaskLister) {
	var narrator analysis.Narrator
	if srv.offline {
		narrator = analysisUC.NewTemplateNarrator()
	} else {
		narrator = analysisUC.NewLLMNarrator(srv.llm)
	}

	uc := analysisUC.New(srv.l, narrator, tasks, srv.parser)
	h := analysisHTTP.New(srv.l, uc, srv.parser, srv.production())
	analysisHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Analysis domain registered (offline=%t)", srv.offline)
}
