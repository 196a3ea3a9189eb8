package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Booking struct {
	bun.BaseModel `bun:"table:bookings,alias:b"`

	ID        int64     `bun:"id,pk,autoincrement"`
	EventID   int64     `bun:"event_id,notnull"`
	UserEmail string    `bun:"user_email,notnull"`
	Timestamp time.Time `bun:"timestamp,nullzero,notnull,default:current_timestamp"`

	// EventTitle is populated by the join against events on reads and is
	// never written back to the bookings table.
	EventTitle string `bun:"event_title,scanonly"`
}

// BookingResponse is the wire shape for a booking joined with its event title.
type BookingResponse struct {
	ID         int64  `json:"id"`
	EventID    int64  `json:"event_id"`
	UserEmail  string `json:"user_email"`
	Timestamp  string `json:"timestamp"`
	EventTitle string `json:"event_title"`
}

// BookingConfirmation is returned after a successful booking. EventTitle
// comes from the existence check, not a second query.
type BookingConfirmation struct {
	Message    string `json:"message"`
	EventTitle string `json:"event_title"`
	UserEmail  string `json:"user_email"`
}

// BookingRequest is the POST /api/bookings body.
type BookingRequest struct {
	EventID   int64  `json:"event_id"`
	UserEmail string `json:"user_email"`
}

func BookingToResponse(b Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		EventID:    b.EventID,
		UserEmail:  b.UserEmail,
		Timestamp:  b.Timestamp.Format(time.RFC3339),
		EventTitle: b.EventTitle,
	}
}

func BookingsToResponse(bookings []Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, BookingToResponse(b))
	}
	return resp
}
