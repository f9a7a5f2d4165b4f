package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/liftflow/internal/catalog"
	"github.com/claude/liftflow/internal/metrics"
	"github.com/claude/liftflow/internal/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListDates(w http.ResponseWriter, r *http.Request) {
	excluding := r.URL.Query().Get("exclude")
	dates, err := s.history.ListNonEmptyDates(excluding)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, dates)
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	date, ok := mustDate(w, r)
	if !ok {
		return
	}
	day, err := s.history.LoadDay(date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleSaveDay(w http.ResponseWriter, r *http.Request) {
	date, ok := mustDate(w, r)
	if !ok {
		return
	}
	var exercises []models.Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercises); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.history.SaveDay(date, exercises); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	date, ok := mustDate(w, r)
	if !ok {
		return
	}
	if err := s.history.DeleteDay(date); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleCopyDay(w http.ResponseWriter, r *http.Request) {
	source, ok := mustDate(w, r)
	if !ok {
		return
	}
	var req struct {
		Target string `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !validDate(req.Target) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid target date"})
		return
	}
	day, err := s.history.CopyDay(source, req.Target)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleDaySummary(w http.ResponseWriter, r *http.Request) {
	date, ok := mustDate(w, r)
	if !ok {
		return
	}
	summary, err := s.history.DaySummary(date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	viewMonth := now
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := time.ParseInLocation("2006-01", m, time.Local)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "month must be YYYY-MM"})
			return
		}
		viewMonth = parsed
	}

	h, err := s.history.All()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	p, err := s.profiles.Get()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, metrics.Compute(h, p, viewMonth, now))
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if part := r.URL.Query().Get("part"); part != "" {
		writeJSON(w, http.StatusOK, catalog.ByPart(part))
		return
	}
	writeJSON(w, http.StatusOK, catalog.Exercises)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// mustDate extracts and validates the {date} route parameter.
func mustDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if !validDate(date) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return "", false
	}
	return date, true
}
