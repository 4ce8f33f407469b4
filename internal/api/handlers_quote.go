package api

import (
	"net/http"

	"github.com/studykeep/studykeep/internal/api/respond"
	"github.com/studykeep/studykeep/internal/quote"
)

// QuoteHandler serves the cached quote-of-the-day.
type QuoteHandler struct {
	fetcher *quote.Fetcher
}

func NewQuoteHandler(f *quote.Fetcher) *QuoteHandler { return &QuoteHandler{fetcher: f} }

// GetQuote GET /api/quote
// 204 when no quote was fetched this session; the panel is simply
// absent.
func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	if h.fetcher == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	q, ok := h.fetcher.Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.WriteJSON(w, http.StatusOK, q)
}
