package httpapi

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jacoagency/productivity/internal/repository"
	"github.com/jacoagency/productivity/internal/service"
)

// Server bundles the handlers with their dependencies. Registries and
// services are injected explicitly; nothing is reached through globals.
type Server struct {
	logger    *logrus.Logger
	users     *repository.UserRepository
	sync      *service.SyncService
	registry  *service.RegistryService
	stats     *service.StatsService
	defaults  *service.DefaultsService
	startTime time.Time
}

func NewServer(
	logger *logrus.Logger,
	users *repository.UserRepository,
	sync *service.SyncService,
	registry *service.RegistryService,
	stats *service.StatsService,
	defaults *service.DefaultsService,
) *Server {
	return &Server{
		logger:    logger,
		users:     users,
		sync:      sync,
		registry:  registry,
		stats:     stats,
		defaults:  defaults,
		startTime: time.Now(),
	}
}

// Routes builds the full handler chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/tasks", s.withUser(s.listTasks))
	mux.HandleFunc("POST /v1/tasks", s.withUser(s.createTask))
	mux.HandleFunc("GET /v1/tasks/folders", s.withUser(s.taskFolders))
	mux.HandleFunc("GET /v1/tasks/default", s.withUser(s.todayTasks))
	mux.HandleFunc("POST /v1/tasks/default-status", s.withUser(s.setDefaultTaskStatus))
	mux.HandleFunc("POST /v1/tasks/archive", s.withUser(s.archiveTasks))
	mux.HandleFunc("PATCH /v1/tasks/{id}", s.withUser(s.updateTask))
	mux.HandleFunc("DELETE /v1/tasks/{id}", s.withUser(s.deleteTask))

	mux.HandleFunc("GET /v1/events", s.withUser(s.listEvents))
	mux.HandleFunc("POST /v1/events", s.withUser(s.createEvent))
	mux.HandleFunc("PATCH /v1/events/{id}", s.withUser(s.updateEvent))
	mux.HandleFunc("DELETE /v1/events/{id}", s.withUser(s.deleteEvent))

	mux.HandleFunc("GET /v1/categories", s.withUser(s.listCategories))
	mux.HandleFunc("POST /v1/categories", s.withUser(s.createCategory))
	mux.HandleFunc("PATCH /v1/categories/{id}", s.withUser(s.updateCategory))
	mux.HandleFunc("DELETE /v1/categories/{id}", s.withUser(s.deleteCategory))

	mux.HandleFunc("GET /v1/importance-levels", s.withUser(s.listImportanceLevels))
	mux.HandleFunc("POST /v1/importance-levels", s.withUser(s.createImportanceLevel))
	mux.HandleFunc("PATCH /v1/importance-levels/{id}", s.withUser(s.updateImportanceLevel))
	mux.HandleFunc("DELETE /v1/importance-levels/{id}", s.withUser(s.deleteImportanceLevel))

	mux.HandleFunc("GET /v1/settings/default-tasks", s.withUser(s.listDefaultTasks))
	mux.HandleFunc("POST /v1/settings/default-tasks", s.withUser(s.createDefaultTask))
	mux.HandleFunc("DELETE /v1/settings/default-tasks/{id}", s.withUser(s.deleteDefaultTask))

	mux.HandleFunc("GET /v1/dashboard/stats", s.withUser(s.dashboardStats))

	mux.HandleFunc("GET /healthz", s.health)
	mux.Handle("GET /metrics", MetricsHandler())

	// Middleware order: request id first so logging and metrics see it.
	handler := MetricsMiddleware(mux)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware(handler)
	return handler
}

// requestLog builds the per-request log entry handlers attach context to.
func (s *Server) requestLog(r *http.Request, handler string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"handler":    handler,
		"request_id": GetRequestID(r.Context()),
	})
}
