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

// TopicHandler is a thin HTTP transport over the TopicService.
type TopicHandler struct {
	svc *services.TopicService
}

func NewTopicHandler(svc *services.TopicService) *TopicHandler { return &TopicHandler{svc: svc} }

// topicView is a topic plus its derived summary, the shape the
// dashboard renders.
type topicView struct {
	model.Topic
	Stats services.TopicSummary `json:"stats"`
}

// CreateTopic POST /api/topics
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.TopicName(req.Name); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	t, ok := h.svc.CreateTopic(r.Context(), req.Name)
	if !ok {
		respond.WriteBadRequest(w, "name is required")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, t)
}

// ListTopics GET /api/topics
// Returns the topics visible under the active filter, each with its
// summary statistics.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics := h.svc.VisibleTopics()
	views := make([]topicView, 0, len(topics))
	for _, t := range topics {
		views = append(views, topicView{Topic: t, Stats: h.svc.Summarize(t)})
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"topics": views,
		"count":  len(views),
	})
}

// GetTopic GET /api/topics/{topicId}
func (h *TopicHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseID(mux.Vars(r)["topicId"])
	if err != nil {
		respond.WriteBadRequest(w, "invalid topic id")
		return
	}
	t, found := h.svc.GetTopic(id)
	if !found {
		respond.WriteNotFound(w, "topic not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, topicView{Topic: t, Stats: h.svc.Summarize(t)})
}

// DeleteTopic DELETE /api/topics/{topicId}
// Idempotent; clients gate this behind a user confirmation.
func (h *TopicHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseID(mux.Vars(r)["topicId"])
	if err != nil {
		respond.WriteBadRequest(w, "invalid topic id")
		return
	}
	h.svc.DeleteTopic(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// GetTopicStats GET /api/topics/{topicId}/stats
func (h *TopicHandler) GetTopicStats(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseID(mux.Vars(r)["topicId"])
	if err != nil {
		respond.WriteBadRequest(w, "invalid topic id")
		return
	}
	t, found := h.svc.GetTopic(id)
	if !found {
		respond.WriteNotFound(w, "topic not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.svc.Summarize(t))
}
