package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"lookmyshow/internal/logger"
	"lookmyshow/internal/models"
)

type DB struct {
	Bun    *bun.DB
	Logger *logger.Logger
}

// CreateBooking inserts one booking row; the store assigns id and timestamp.
// Storage failures do not escape this boundary: the cause is logged and the
// call reports false.
func (d *DB) CreateBooking(eventID int64, userEmail string) bool {
	booking := models.Booking{
		EventID:   eventID,
		UserEmail: userEmail,
	}

	_, err := d.Bun.NewInsert().
		Model(&booking).
		Column("event_id", "user_email").
		Exec(context.Background())
	if err != nil {
		if d.Logger != nil {
			d.Logger.Error("DATABASE", fmt.Sprintf("CreateBooking: insert failed: %v", err))
		}
		return false
	}
	return true
}

// GetAllBookings returns every booking joined with its event title, most
// recent first.
func (d *DB) GetAllBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		ColumnExpr("b.*").
		ColumnExpr("e.title AS event_title").
		Join("JOIN events AS e ON e.id = b.event_id").
		Order("b.timestamp DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBookingsByEmail returns the same join filtered to one user's email.
func (d *DB) GetBookingsByEmail(userEmail string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		ColumnExpr("b.*").
		ColumnExpr("e.title AS event_title").
		Join("JOIN events AS e ON e.id = b.event_id").
		Where("b.user_email = ?", userEmail).
		Order("b.timestamp DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBookingByID returns a single joined booking or models.ErrBookingNotFound.
func (d *DB) GetBookingByID(id int64) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		ColumnExpr("b.*").
		ColumnExpr("e.title AS event_title").
		Join("JOIN events AS e ON e.id = b.event_id").
		Where("b.id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}
