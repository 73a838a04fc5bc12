package entity

import "time"

// ActivityType is a catalogue entry (visit, call, inspection, ...) whose
// weight is the score contribution of one occurrence.
type ActivityType struct {
	ID          int64
	Name        string
	Weight      int
	Icon        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
