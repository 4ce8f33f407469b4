package api

import (
	"encoding/json"
	"net/http"

	"github.com/studykeep/studykeep/internal/api/respond"
	"github.com/studykeep/studykeep/internal/model"
	"github.com/studykeep/studykeep/internal/services"
	"github.com/studykeep/studykeep/internal/view"
)

// filterAll is the wire form of the "show all" selection.
const filterAll = "all"

// FilterHandler serves the active view selection.
type FilterHandler struct {
	svc *services.TopicService
}

func NewFilterHandler(svc *services.TopicService) *FilterHandler {
	return &FilterHandler{svc: svc}
}

// SetFilter PUT /api/filter
// Accepts {"topicId": "all"} or {"topicId": "<id>"}. A stale id is
// accepted and simply yields an empty visible set until changed.
func (h *FilterHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TopicID string `json:"topicId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.TopicID == filterAll || req.TopicID == "" {
		h.svc.ClearFilter()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	id, err := model.ParseID(req.TopicID)
	if err != nil {
		respond.WriteBadRequest(w, "topicId must be a topic id or \"all\"")
		return
	}
	h.svc.SetFilter(id)
	w.WriteHeader(http.StatusNoContent)
}

// GetFilter GET /api/filter
func (h *FilterHandler) GetFilter(w http.ResponseWriter, r *http.Request) {
	current := h.svc.Filter()
	out := map[string]interface{}{"topicId": filterAll}
	if current != view.AllTopics {
		out["topicId"] = current.String()
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
