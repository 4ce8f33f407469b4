// Package store holds the in-memory topic collection, the single
// source of truth for the application.
package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/studykeep/studykeep/internal/ident"
	"github.com/studykeep/studykeep/internal/model"
	"github.com/studykeep/studykeep/internal/persist"
)

// DateLayout is the calendar-date form accepted by the logging
// operations and supplied as form defaults.
const DateLayout = "2006-01-02"

// TopicStore is an ordered topic collection. Mutations are quiet
// no-ops on invalid input: callers pre-validate and surface field
// errors before calling, so "not found" and "bad value" are reported
// as a false second return, never as a panic or error.
//
// Every successful mutation persists a full snapshot through the
// bridge. A failed write is logged and does not fail the mutation;
// losing the window between mutation and write is accepted.
type TopicStore struct {
	mu     sync.RWMutex
	topics []model.Topic
	ids    *ident.Generator
	bridge *persist.Bridge
	log    zerolog.Logger
}

func New(ids *ident.Generator, bridge *persist.Bridge, log zerolog.Logger) *TopicStore {
	return &TopicStore{ids: ids, bridge: bridge, log: log}
}

// Load re-hydrates the collection from the persisted snapshot. Called
// once at startup, before the store is shared.
func (s *TopicStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = s.bridge.Load(ctx)
	s.log.Info().Int("topics", len(s.topics)).Msg("topic store loaded")
}

// Create appends a topic with empty logs. A name that trims to empty
// is rejected.
func (s *TopicStore) Create(ctx context.Context, name string) (model.Topic, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.Topic{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t := model.Topic{
		ID:           s.ids.NextID(),
		Name:         trimmed,
		TimeEntries:  []model.TimeEntry{},
		Grades:       []model.Grade{},
		CreationTime: time.Now().UTC(),
	}
	s.topics = append(s.topics, t)
	s.save(ctx)
	return t, true
}

// Delete removes the topic and everything it owns. Reports whether a
// topic was removed; an absent id is a no-op.
func (s *TopicStore) Delete(ctx context.Context, id model.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.topics {
		if t.ID == id {
			s.topics = append(s.topics[:i], s.topics[i+1:]...)
			s.save(ctx)
			return true
		}
	}
	return false
}

// LogTime appends a study session to the topic's time log. The topic
// must exist, hours must be positive and date must parse as
// YYYY-MM-DD.
func (s *TopicStore) LogTime(ctx context.Context, topicID model.ID, hours float64, date, notes string) (model.TimeEntry, bool) {
	if hours <= 0 || !validDate(date) {
		return model.TimeEntry{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(topicID)
	if i < 0 {
		return model.TimeEntry{}, false
	}
	e := model.TimeEntry{ID: s.ids.NextID(), Hours: hours, Date: date, Notes: notes}
	s.topics[i].TimeEntries = append(s.topics[i].TimeEntries, e)
	s.save(ctx)
	return e, true
}

// LogGrade appends an assessment result to the topic's grade log.
// Same preconditions as LogTime with the grade value substituting for
// hours; the value itself is unconstrained beyond being supplied.
func (s *TopicStore) LogGrade(ctx context.Context, topicID model.ID, value float64, date, notes, gradeType string) (model.Grade, bool) {
	if !validDate(date) {
		return model.Grade{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(topicID)
	if i < 0 {
		return model.Grade{}, false
	}
	g := model.Grade{ID: s.ids.NextID(), Value: value, Date: date, Notes: notes, Type: gradeType}
	s.topics[i].Grades = append(s.topics[i].Grades, g)
	s.save(ctx)
	return g, true
}

// Topics returns the collection in insertion order.
func (s *TopicStore) Topics() []model.Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Topic, len(s.topics))
	copy(out, s.topics)
	return out
}

// Get looks up one topic by id.
func (s *TopicStore) Get(id model.ID) (model.Topic, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.topics[i], true
	}
	return model.Topic{}, false
}

// indexOf must be called with the lock held.
func (s *TopicStore) indexOf(id model.ID) int {
	for i, t := range s.topics {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// save must be called with the write lock held so the snapshot is a
// consistent view of the collection.
func (s *TopicStore) save(ctx context.Context) {
	if err := s.bridge.Save(ctx, s.topics); err != nil {
		s.log.Error().Err(err).Msg("snapshot write failed")
	}
}

func validDate(date string) bool {
	if date == "" {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
