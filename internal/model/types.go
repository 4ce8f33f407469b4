package model

import (
	"strconv"
	"time"
)

// ID uniquely identifies a topic, time entry or grade. Values are
// allocated by the ident generator and are unique for the lifetime of
// the process that produced them.
type ID int64

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseID parses the decimal form produced by ID.String.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

// Topic is a user-defined subject being tracked. It exclusively owns
// its two append-only logs; entries and grades are never referenced
// from anywhere else.
type Topic struct {
	ID           ID          `json:"id"`
	Name         string      `json:"name"`
	TimeEntries  []TimeEntry `json:"timeEntries"`
	Grades       []Grade     `json:"grades"`
	CreationTime time.Time   `json:"creationTime"`
}

// TimeEntry is one logged study session. Immutable once created.
type TimeEntry struct {
	ID    ID      `json:"id"`
	Hours float64 `json:"hours"`
	Date  string  `json:"date"`
	Notes string  `json:"notes"`
}

// Grade is one logged assessment result. Type is an optional
// free-text category label. Immutable once created.
type Grade struct {
	ID    ID      `json:"id"`
	Value float64 `json:"value"`
	Date  string  `json:"date"`
	Notes string  `json:"notes"`
	Type  string  `json:"type,omitempty"`
}
