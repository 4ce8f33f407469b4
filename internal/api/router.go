package api

import (
	"github.com/gorilla/mux"

	"github.com/studykeep/studykeep/internal/api/recovery"
	"github.com/studykeep/studykeep/internal/kv"
	"github.com/studykeep/studykeep/internal/quote"
	"github.com/studykeep/studykeep/internal/services"
)

// NewRouter wires all HTTP routes. fetcher may be nil when the quote
// feature is disabled.
func NewRouter(svc *services.TopicService, provider kv.Store, fetcher *quote.Fetcher) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	// Topics
	topics := NewTopicHandler(svc)
	root.HandleFunc("/api/topics", topics.CreateTopic).Methods("POST")
	root.HandleFunc("/api/topics", topics.ListTopics).Methods("GET")
	root.HandleFunc("/api/topics/{topicId}", topics.GetTopic).Methods("GET")
	root.HandleFunc("/api/topics/{topicId}", topics.DeleteTopic).Methods("DELETE")
	root.HandleFunc("/api/topics/{topicId}/stats", topics.GetTopicStats).Methods("GET")

	// Logs
	logs := NewLogHandler(svc)
	root.HandleFunc("/api/topics/{topicId}/time", logs.LogTime).Methods("POST")
	root.HandleFunc("/api/topics/{topicId}/grades", logs.LogGrade).Methods("POST")

	// Filter
	filter := NewFilterHandler(svc)
	root.HandleFunc("/api/filter", filter.SetFilter).Methods("PUT")
	root.HandleFunc("/api/filter", filter.GetFilter).Methods("GET")

	// Quote
	quotes := NewQuoteHandler(fetcher)
	root.HandleFunc("/api/quote", quotes.GetQuote).Methods("GET")

	// Health
	health := NewHealthHandler(provider)
	root.HandleFunc("/api/health", health.CheckHealth).Methods("GET")

	return root
}
