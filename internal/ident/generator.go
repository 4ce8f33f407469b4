// Package ident allocates record identifiers.
package ident

import (
	"sync/atomic"
	"time"

	"github.com/studykeep/studykeep/internal/model"
)

// counterBits is the low-order portion of every ID reserved for a
// per-process monotonic counter, so two calls inside the same
// millisecond still produce distinct, strictly increasing values.
// 12 bits keeps the full ID under 2^53, safe for consumers that read
// JSON numbers as doubles.
const counterBits = 12

// Generator produces unique, monotonically increasing IDs derived
// from the wall clock. Safe for concurrent use.
type Generator struct {
	now  func() time.Time
	last atomic.Int64
}

// New returns a Generator reading the system clock.
func New() *Generator { return NewWithClock(time.Now) }

// NewWithClock allows tests to inject a deterministic clock.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// NextID returns an identifier unique among all IDs generated by this
// process. The clock reading occupies the high bits; a counter in the
// low bits breaks ties within one millisecond.
func (g *Generator) NextID() model.ID {
	base := g.now().UnixMilli() << counterBits
	for {
		last := g.last.Load()
		next := base
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return model.ID(next)
		}
	}
}
