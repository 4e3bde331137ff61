package domain

import "fmt"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
)

// Booking is created pending by a reservation and only moves to confirmed.
type Booking struct {
	ID          int64         `json:"id"`
	Reference   string        `json:"reference"`
	Status      BookingStatus `json:"status"`
	MasterID    int64         `json:"master_id"`
	ClientID    int64         `json:"client_id"`
	ProcedureID int64         `json:"procedure_id"`
	SlotID      *int64        `json:"slot_id,omitempty"`
	FullTime    string        `json:"full_time"`

	// Relations
	Client *Client       `json:"client,omitempty"`
	Slot   *ScheduleSlot `json:"slot,omitempty"`
}

// BookingDetails is a booking joined with the names shown to the administrator.
type BookingDetails struct {
	ID             int64         `json:"id"`
	Reference      string        `json:"reference"`
	Status         BookingStatus `json:"status"`
	FullTime       string        `json:"full_time"`
	ClientName     string        `json:"client_name"`
	ClientPhone    string        `json:"client_phone"`
	MasterName     string        `json:"master_name"`
	ProcedureTitle string        `json:"procedure_title"`
}

type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ClientStrategy string

const (
	// ClientAlwaysNew inserts a client row for every booking.
	ClientAlwaysNew ClientStrategy = "always-new"
	// ClientReuseByPhone reuses the first client with the same phone.
	ClientReuseByPhone ClientStrategy = "reuse-by-phone"
)

func ParseClientStrategy(s string) (ClientStrategy, error) {
	switch v := ClientStrategy(s); v {
	case ClientAlwaysNew, ClientReuseByPhone:
		return v, nil
	}
	return "", fmt.Errorf("%w: unknown client strategy %q", ErrValidation, s)
}
