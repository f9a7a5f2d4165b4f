package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/claude/liftflow/internal/backup"
	"github.com/claude/liftflow/internal/coach"
	"github.com/claude/liftflow/internal/models"
	"github.com/claude/liftflow/internal/storage"
	"github.com/claude/liftflow/internal/tools"
	"github.com/go-chi/chi/v5"
)

const defaultRestSeconds = 90

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.profiles.Save(p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListPhotos(w http.ResponseWriter, r *http.Request) {
	list, err := s.photos.List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleAddPhoto(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
		URL  string `json:"url"`
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !validDate(req.Date) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}
	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "url is required"})
		return
	}
	rec, err := s.photos.Add(req.Date, req.URL, req.Note)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleRemovePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid photo id"})
		return
	}
	if err := s.photos.Remove(id); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleComparePhotos(w http.ResponseWriter, r *http.Request) {
	idA, errA := strconv.ParseInt(r.URL.Query().Get("a"), 10, 64)
	idB, errB := strconv.ParseInt(r.URL.Query().Get("b"), 10, 64)
	if errA != nil || errB != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "a and b photo ids required"})
		return
	}
	before, after, err := s.photos.SelectPair(idA, idB)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]models.PhotoRecord{
		"before": before,
		"after":  after,
	})
}

func (s *Server) handleGetRestTimer(w http.ResponseWriter, r *http.Request) {
	seconds := defaultRestSeconds
	raw, ok, err := s.state.Get(storage.KeyRestTimer)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if ok {
		if parsed, err := strconv.Atoi(string(raw)); err == nil && parsed > 0 {
			seconds = parsed
		}
	}
	writeJSON(w, http.StatusOK, map[string]int{"seconds": seconds})
}

func (s *Server) handleSetRestTimer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seconds int `json:"seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Seconds <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "seconds must be positive"})
		return
	}
	if err := s.state.Put(storage.KeyRestTimer, []byte(strconv.Itoa(req.Seconds))); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"seconds": req.Seconds})
}

// handleGetAPIKey reports whether a key is stored; the key itself never
// leaves the server.
func (s *Server) handleGetAPIKey(w http.ResponseWriter, r *http.Request) {
	raw, ok, err := s.state.Get(storage.KeyAPIKey)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"configured": ok && len(raw) > 0})
}

func (s *Server) handleSetAPIKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.APIKey == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "apiKey is required"})
		return
	}
	if err := s.state.Put(storage.KeyAPIKey, []byte(req.APIKey)); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"configured": true})
}

func (s *Server) handleClearAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := s.state.Delete(storage.KeyAPIKey); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"configured": false})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	doc, err := backup.Export(s.state)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="liftflow-backup.json"`)
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := backup.Import(s.state, data); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

func (s *Server) handleCoachChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string           `json:"message"`
		Context string           `json:"context"`
		History []models.Message `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}
	reply := s.coach.Chat(r.Context(), req.Message, req.Context, req.History)
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// handleCoachEvaluate sends a day's completed sets to the coach for a
// strict workout review.
func (s *Server) handleCoachEvaluate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !validDate(req.Date) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}
	summary, err := s.history.DaySummary(req.Date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	reply := s.coach.Chat(r.Context(), coach.EvaluationPreamble+summary, "訓練評價", nil)
	writeJSON(w, http.StatusOK, map[string]string{
		"summary": summary,
		"reply":   reply,
	})
}

func (s *Server) handleCoachAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Image string `json:"image"`
		Kind  string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Image == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "image is required"})
		return
	}
	if req.Kind != "form" && req.Kind != "physique" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "kind must be form or physique"})
		return
	}
	writeJSON(w, http.StatusOK, s.coach.AnalyzeImage(r.Context(), req.Image, req.Kind))
}

func (s *Server) handleCoachRoutine(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Request string `json:"request"`
		Context string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Request == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "request is required"})
		return
	}
	writeJSON(w, http.StatusOK, s.coach.GenerateRoutine(r.Context(), req.Request, req.Context))
}

func (s *Server) handleOneRM(w http.ResponseWriter, r *http.Request) {
	kg, errKg := strconv.ParseFloat(r.URL.Query().Get("kg"), 64)
	reps, errReps := strconv.Atoi(r.URL.Query().Get("reps"))
	if errKg != nil || errReps != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "kg and reps parameters required"})
		return
	}
	result, err := tools.EstimateOneRM(kg, reps)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePlates(w http.ResponseWriter, r *http.Request) {
	target, errT := strconv.ParseFloat(r.URL.Query().Get("target"), 64)
	if errT != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "target parameter required"})
		return
	}
	bar := 20.0
	if b := r.URL.Query().Get("bar"); b != "" {
		parsed, err := strconv.ParseFloat(b, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid bar weight"})
			return
		}
		bar = parsed
	}
	plates, err := tools.PlatesPerSide(target, bar)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, plates)
}

func (s *Server) handleTDEE(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Gender   string  `json:"gender"`
		WeightKg float64 `json:"weightKg"`
		HeightCm float64 `json:"heightCm"`
		Age      int     `json:"age"`
		Activity float64 `json:"activity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	result, err := tools.EstimateTDEE(req.Gender, req.WeightKg, req.HeightCm, req.Age, req.Activity)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}
