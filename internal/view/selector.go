// Package view holds which topic is selected for display and the
// filtering logic over the topic collection.
package view

import (
	"sync"

	"github.com/studykeep/studykeep/internal/model"
)

// AllTopics is the sentinel selection meaning "show everything".
const AllTopics = model.ID(0)

// Selector tracks the active filter selection. Safe for concurrent
// use.
type Selector struct {
	mu      sync.Mutex
	current model.ID
}

func NewSelector() *Selector { return &Selector{current: AllTopics} }

// Set selects a single topic for display.
func (s *Selector) Set(id model.ID) {
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
}

// All resets the selection to every topic.
func (s *Selector) All() { s.Set(AllTopics) }

// Current returns the active selection.
func (s *Selector) Current() model.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// ClearIf resets the selection to AllTopics when it matches id.
// Called when the selected topic is deleted, so the view never keeps a
// filter pointing at a topic that no longer exists.
func (s *Selector) ClearIf(id model.ID) {
	s.mu.Lock()
	if s.current == id {
		s.current = AllTopics
	}
	s.mu.Unlock()
}

// VisibleTopics filters topics by the given selection: the identity
// sequence for AllTopics, otherwise the singleton match, or an empty
// sequence when the selection is stale.
func VisibleTopics(topics []model.Topic, filter model.ID) []model.Topic {
	if filter == AllTopics {
		return topics
	}
	for _, t := range topics {
		if t.ID == filter {
			return []model.Topic{t}
		}
	}
	return nil
}
