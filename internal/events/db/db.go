package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"lookmyshow/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// GetAllEvents returns every event ordered ascending by date.
func (d *DB) GetAllEvents() ([]models.Event, error) {
	var events []models.Event
	err := d.Bun.NewSelect().
		Model(&events).
		Order("date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventByID returns the event or models.ErrEventNotFound when no row
// matches. Infrastructure failures come back as-is.
func (d *DB) GetEventByID(id int64) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("e.id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}
