package catalog

import (
	"time"

	"smakownia-backend/internal/domain/masterclass"
)

// Partner is a cooperating brand shown on the landing page.
type Partner struct {
	ID          string
	Name        string
	Logo        string
	URL         string
	Description masterclass.LocalizedText
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MapLocation is a pin on the "where we cook" map.
type MapLocation struct {
	ID        string
	Name      string
	City      string
	Address   string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
