package models

import (
	"github.com/uptrace/bun"
)

type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Title       string `bun:"title,notnull"`
	Date        string `bun:"date,notnull"`
	Location    string `bun:"location"`
	Description string `bun:"description"`
}

// EventResponse is the wire shape for a single event.
type EventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Description *string `json:"description"`
}

// EventToResponse converts a stored event to its wire shape. Description is
// nullable on the wire even though the column stores an empty string.
func EventToResponse(e Event) EventResponse {
	resp := EventResponse{
		ID:       e.ID,
		Title:    e.Title,
		Date:     e.Date,
		Location: e.Location,
	}
	if e.Description != "" {
		resp.Description = &e.Description
	}
	return resp
}

func EventsToResponse(events []Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, EventToResponse(e))
	}
	return resp
}
