package entity

import "time"

// Property is a real-estate object that field activities are logged against.
type Property struct {
	ID        int64
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
