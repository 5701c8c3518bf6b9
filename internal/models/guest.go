package models

import "time"

// NumPeopleDeclined is the stored sentinel for an explicit decline.
const NumPeopleDeclined = -1

// GuestStatus is the explicit three-variant response state. Rows and JSON
// keep the legacy confirmed+num_people pair; Status derives the variant.
type GuestStatus string

const (
	StatusPending   GuestStatus = "pending"
	StatusConfirmed GuestStatus = "confirmed"
	StatusDeclined  GuestStatus = "declined"
)

type Guest struct {
	ID        int       `json:"id"`
	EventID   int       `json:"event_id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	Confirmed bool      `json:"confirmed"`
	NumPeople int       `json:"num_people"`
	CreatedAt time.Time `json:"created_at"`
}

func (g Guest) Status() GuestStatus {
	switch {
	case g.Confirmed:
		return StatusConfirmed
	case g.NumPeople == NumPeopleDeclined:
		return StatusDeclined
	default:
		return StatusPending
	}
}

// GuestSummary is the host-dashboard projection of a guest. The token is
// deliberately absent so the listing never leaks invite credentials.
type GuestSummary struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Confirmed bool      `json:"confirmed"`
	NumPeople int       `json:"num_people"`
	CreatedAt time.Time `json:"created_at"`
}

// Invite is a guest joined with the event fields the invite page renders.
type Invite struct {
	Guest
	EventName   string     `json:"event_name"`
	Description string     `json:"description"`
	Message     string     `json:"message"`
	Photos      []string   `json:"photos"`
	Location    string     `json:"location"`
	Date        *time.Time `json:"date"`
}
