package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"lookmyshow/internal/models"
)

// Bootstrap creates the events and bookings tables if they are missing and
// seeds a few sample events into an empty events table. Events are normally
// pre-seeded by an external process; this keeps a fresh local database
// usable without it.
func Bootstrap(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().Model((*models.Event)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}

	if _, err := db.NewCreateTable().Model((*models.Booking)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}

	count, err := db.NewSelect().Model((*models.Event)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []models.Event{
		{Title: "Rock Concert", Date: "2026-10-12", Location: "Madison Square Garden", Description: "Live rock performance"},
		{Title: "Tech Conference", Date: "2026-11-03", Location: "Moscone Center", Description: "Annual developer conference"},
		{Title: "Jazz Night", Date: "2026-09-21", Location: "Blue Note"},
	}

	if _, err := db.NewInsert().Model(&samples).Exec(ctx); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}

	return nil
}
