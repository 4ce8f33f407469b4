package api

import (
	"context"
	"net/http"
	"time"

	"github.com/studykeep/studykeep/internal/api/respond"
	"github.com/studykeep/studykeep/internal/kv"
)

// HealthHandler reports service health based on the snapshot
// provider.
type HealthHandler struct {
	provider kv.Store
}

func NewHealthHandler(provider kv.Store) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// CheckHealth GET /api/health
// Always returns 200; the body reports healthy/unhealthy.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	if err := h.provider.HealthPing(ctx); err != nil {
		status = "unhealthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
