package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studykeep/studykeep/internal/api/respond"
	"github.com/studykeep/studykeep/internal/api/validate"
	"github.com/studykeep/studykeep/internal/model"
	"github.com/studykeep/studykeep/internal/services"
)

// LogHandler serves the two append operations: study time and grades.
type LogHandler struct {
	svc *services.TopicService
}

func NewLogHandler(svc *services.TopicService) *LogHandler { return &LogHandler{svc: svc} }

// LogTime POST /api/topics/{topicId}/time
func (h *LogHandler) LogTime(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseID(mux.Vars(r)["topicId"])
	if err != nil {
		respond.WriteBadRequest(w, "invalid topic id")
		return
	}
	var req struct {
		Hours float64 `json:"hours"`
		Date  string  `json:"date"`
		Notes string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Hours(req.Hours); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Date(req.Date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	e, ok := h.svc.LogTime(r.Context(), id, req.Hours, req.Date, req.Notes)
	if !ok {
		respond.WriteNotFound(w, "topic not found")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, e)
}

// LogGrade POST /api/topics/{topicId}/grades
func (h *LogHandler) LogGrade(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseID(mux.Vars(r)["topicId"])
	if err != nil {
		respond.WriteBadRequest(w, "invalid topic id")
		return
	}
	var req struct {
		Value *float64 `json:"value"`
		Date  string   `json:"date"`
		Notes string   `json:"notes"`
		Type  string   `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.GradeValue(req.Value); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Date(req.Date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	g, ok := h.svc.LogGrade(r.Context(), id, *req.Value, req.Date, req.Notes, req.Type)
	if !ok {
		respond.WriteNotFound(w, "topic not found")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, g)
}
