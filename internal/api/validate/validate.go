// Package validate checks form-level inputs before they reach the
// store, which treats invalid input as a quiet no-op.
package validate

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// TopicName requires a name that is non-empty after trimming.
func TopicName(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("name is required")
	}
	if len(v) > 100 {
		return fmt.Errorf("name exceeds 100 characters")
	}
	return nil
}

// Hours requires a positive number of hours; quarter-hour granularity
// is a UI convention, not enforced here.
func Hours(v float64) error {
	if v <= 0 {
		return fmt.Errorf("hours must be a positive number")
	}
	return nil
}

// Date requires a YYYY-MM-DD calendar date.
func Date(v string) error {
	if v == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

// GradeValue requires the value to be present. The 0-100 domain is a
// UI convention and deliberately not enforced beyond that.
func GradeValue(v *float64) error {
	if v == nil {
		return fmt.Errorf("value is required")
	}
	return nil
}
