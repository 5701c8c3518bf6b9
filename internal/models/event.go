package models

import "time"

// CustomImage is a decorative image pinned to one of six fixed layout slots
// on the invite page.
type CustomImage struct {
	URL      string `json:"url"`
	Position string `json:"position"`
}

const (
	PositionCenterTop    = "center-top"
	PositionCenterBottom = "center-bottom"
	PositionLeftTop      = "left-top"
	PositionLeftBottom   = "left-bottom"
	PositionRightTop     = "right-top"
	PositionRightBottom  = "right-bottom"
)

type Event struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Message      string        `json:"message"`
	Photos       []string      `json:"photos"`
	Location     string        `json:"location"`
	Date         *time.Time    `json:"date"`
	CustomImages []CustomImage `json:"custom_images"`
	CreatedAt    time.Time     `json:"created_at"`
}

// EventStats aggregates guest responses for one event. Declined guests are
// counted as pending here; only confirmed ones contribute to TotalPeople.
type EventStats struct {
	TotalGuests     int `json:"total_guests"`
	ConfirmedGuests int `json:"confirmed_guests"`
	TotalPeople     int `json:"total_people"`
	PendingGuests   int `json:"pending_guests"`
}

type EventWithStats struct {
	Event
	EventStats
}
