package api

import (
	"context"
	"fmt"
	"net/http"

	"fabshop-api/config"
	"fabshop-api/internal/middle"
	"fabshop-api/models"
	"fabshop-api/service"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServerParams struct {
	fx.In
	Lifecycle     fx.Lifecycle
	HealthService *HealthService
	Projects      service.ProjectService
	Tasks         service.TaskService
	Completion    service.CompletionService
	Files         service.FileService
	Ledger        service.LedgerService
	Audit         *middle.AuditMiddleware
	Logger        *zap.Logger
	Config        *config.AppConfig
}

// NewAPIServer creates the HTTP server for all API endpoints.
func NewAPIServer(params ServerParams) *http.Server {
	mux := http.NewServeMux()
	logger := params.Logger

	// Health endpoint
	mux.HandleFunc("GET /health", handleHealth(params.HealthService, logger))

	// Project endpoints
	mux.HandleFunc("POST /api/projects", handleProjectCreate(params.Projects, logger))
	mux.HandleFunc("GET /api/projects", handleProjectList(params.Projects, logger))
	mux.HandleFunc("GET /api/projects/completion/{projectNo}", handleProjectCompletion(params.Completion, params.Projects, logger))
	mux.HandleFunc("GET /api/projects/{projectNo}", handleProjectGet(params.Projects, logger))
	mux.HandleFunc("PATCH /api/projects/{projectNo}", handleProjectUpdate(params.Projects, logger))
	mux.HandleFunc("DELETE /api/projects/{projectNo}", handleProjectDelete(params.Projects, logger))

	// Task endpoints, one router per category: /api/panel-tasks,
	// /api/strip-curtain-tasks and so on.
	for _, cat := range models.Categories {
		base := "/api/" + cat.Slug() + "-tasks"
		mux.HandleFunc("POST "+base, handleTaskCreate(cat, params.Tasks, logger))
		mux.HandleFunc("GET "+base, handleTaskList(cat, params.Tasks, logger))
		mux.HandleFunc("GET "+base+"/{id}", handleTaskGet(cat, params.Tasks, logger))
		mux.HandleFunc("PATCH "+base+"/{id}", handleTaskUpdate(cat, params.Tasks, logger))
		mux.HandleFunc("DELETE "+base+"/{id}", handleTaskDelete(cat, params.Tasks, logger))
	}

	// File endpoints
	mux.HandleFunc("POST /api/projects/{projectNo}/files", handleFileUpload(params.Files, logger))
	mux.HandleFunc("GET /api/projects/{projectNo}/files", handleFileList(params.Files, logger))
	mux.HandleFunc("GET /api/files/{id}", handleFileDownload(params.Files, logger))
	mux.HandleFunc("DELETE /api/files/{id}", handleFileDelete(params.Files, logger))

	// Job ledger endpoints
	mux.HandleFunc("POST /api/job-ledger", handleLedgerCreate(params.Ledger, logger))
	mux.HandleFunc("GET /api/job-ledger", handleLedgerList(params.Ledger, logger))
	mux.HandleFunc("GET /api/job-ledger/{id}", handleLedgerGet(params.Ledger, logger))
	mux.HandleFunc("PATCH /api/job-ledger/{id}", handleLedgerUpdate(params.Ledger, logger))
	mux.HandleFunc("POST /api/job-ledger/{id}/approve", handleLedgerApprove(params.Ledger, logger))
	mux.HandleFunc("POST /api/job-ledger/{id}/reject", handleLedgerReject(params.Ledger, logger))
	mux.HandleFunc("DELETE /api/job-ledger/{id}", handleLedgerDelete(params.Ledger, logger))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", params.Config.Port),
		Handler: params.Audit.Middleware(mux),
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting API server", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("failed to start API server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})

	return server
}

var Module = fx.Module("api",
	fx.Provide(
		NewHealthService,
	),
	fx.Invoke(
		NewAPIServer,
	),
)
