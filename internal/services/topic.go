// Package services orchestrates topic use cases for the transport
// layer.
package services

import (
	"context"

	"github.com/studykeep/studykeep/internal/metrics"
	"github.com/studykeep/studykeep/internal/model"
	"github.com/studykeep/studykeep/internal/store"
	"github.com/studykeep/studykeep/internal/view"
)

// TopicSummary is the derived-statistics view of one topic.
// LatestGrade carries the raw grade value, or the string "N/A" when no
// grades are logged; Efficiency is pre-formatted to two decimals.
type TopicSummary struct {
	TotalHours     float64     `json:"totalHours"`
	LatestGrade    interface{} `json:"latestGrade"`
	Efficiency     string      `json:"efficiency"`
	Recommendation string      `json:"recommendation"`
}

// TopicService couples the topic store with the view selector so a
// deletion can reset a filter that pointed at the deleted topic.
type TopicService struct {
	store    *store.TopicStore
	selector *view.Selector
}

func NewTopicService(s *store.TopicStore, sel *view.Selector) *TopicService {
	return &TopicService{store: s, selector: sel}
}

func (s *TopicService) CreateTopic(ctx context.Context, name string) (model.Topic, bool) {
	return s.store.Create(ctx, name)
}

// DeleteTopic removes the topic; the caller is expected to have
// confirmed the action with the user. When the deleted topic was the
// active filter selection the filter resets to "all".
func (s *TopicService) DeleteTopic(ctx context.Context, id model.ID) bool {
	deleted := s.store.Delete(ctx, id)
	if deleted {
		s.selector.ClearIf(id)
	}
	return deleted
}

func (s *TopicService) LogTime(ctx context.Context, topicID model.ID, hours float64, date, notes string) (model.TimeEntry, bool) {
	return s.store.LogTime(ctx, topicID, hours, date, notes)
}

func (s *TopicService) LogGrade(ctx context.Context, topicID model.ID, value float64, date, notes, gradeType string) (model.Grade, bool) {
	return s.store.LogGrade(ctx, topicID, value, date, notes, gradeType)
}

func (s *TopicService) GetTopic(id model.ID) (model.Topic, bool) {
	return s.store.Get(id)
}

func (s *TopicService) SetFilter(id model.ID) { s.selector.Set(id) }

func (s *TopicService) ClearFilter() { s.selector.All() }

func (s *TopicService) Filter() model.ID { return s.selector.Current() }

// VisibleTopics returns the topics matching the active filter, in
// insertion order.
func (s *TopicService) VisibleTopics() []model.Topic {
	return view.VisibleTopics(s.store.Topics(), s.selector.Current())
}

// Summarize computes the derived statistics for one topic.
func (s *TopicService) Summarize(t model.Topic) TopicSummary {
	sum := TopicSummary{
		TotalHours:     metrics.TotalHours(t),
		LatestGrade:    "N/A",
		Efficiency:     metrics.Efficiency(t).String(),
		Recommendation: metrics.Recommendation(t),
	}
	if g := metrics.LatestGrade(t); g.Valid {
		sum.LatestGrade = g.Value
	}
	return sum
}
