package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/claude/liftflow/internal/history"
	"github.com/claude/liftflow/internal/models"
	"github.com/claude/liftflow/internal/photos"
	"github.com/claude/liftflow/internal/profile"
	"github.com/claude/liftflow/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Coach is the AI gateway surface the server needs. Implemented by
// coach.Client; stubbed in tests.
type Coach interface {
	Chat(ctx context.Context, message, contextLabel string, hist []models.Message) string
	AnalyzeImage(ctx context.Context, imageBase64, kind string) models.Feedback
	GenerateRoutine(ctx context.Context, request, contextLabel string) []models.Exercise
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	state    *storage.Store
	history  *history.Store
	photos   *photos.Store
	profiles *profile.Store
	coach    Coach
	log      *slog.Logger
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(state *storage.Store, hist *history.Store, ph *photos.Store, prof *profile.Store, coach Coach, log *slog.Logger) *Server {
	s := &Server{
		state:    state,
		history:  hist,
		photos:   ph,
		profiles: prof,
		coach:    coach,
		log:      log,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/workouts", s.handleListDates)
		r.Get("/workouts/{date}", s.handleGetDay)
		r.Put("/workouts/{date}", s.handleSaveDay)
		r.Delete("/workouts/{date}", s.handleDeleteDay)
		r.Post("/workouts/{date}/copy", s.handleCopyDay)
		r.Get("/workouts/{date}/summary", s.handleDaySummary)

		r.Get("/metrics", s.handleMetrics)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleSaveProfile)

		r.Get("/photos", s.handleListPhotos)
		r.Post("/photos", s.handleAddPhoto)
		r.Delete("/photos/{id}", s.handleRemovePhoto)
		r.Get("/photos/compare", s.handleComparePhotos)

		r.Get("/settings/rest-timer", s.handleGetRestTimer)
		r.Put("/settings/rest-timer", s.handleSetRestTimer)
		r.Get("/settings/api-key", s.handleGetAPIKey)
		r.Put("/settings/api-key", s.handleSetAPIKey)
		r.Delete("/settings/api-key", s.handleClearAPIKey)

		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)

		r.Post("/coach/chat", s.handleCoachChat)
		r.Post("/coach/evaluate", s.handleCoachEvaluate)
		r.Post("/coach/analyze", s.handleCoachAnalyze)
		r.Post("/coach/routine", s.handleCoachRoutine)

		r.Get("/tools/onerm", s.handleOneRM)
		r.Get("/tools/plates", s.handlePlates)
		r.Post("/tools/tdee", s.handleTDEE)

		r.Get("/catalog", s.handleCatalog)
	})
}

// SetFrontend mounts the embedded SPA filesystem.
// Unmatched routes serve index.html for client-side routing.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		f, err := webFS.Open(r.URL.Path[1:])
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
