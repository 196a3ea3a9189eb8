package db_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"lookmyshow/internal/events/db"
	"lookmyshow/internal/models"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().Model((*models.Event)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create events table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func seedEvent(t *testing.T, bunDB *bun.DB, event *models.Event) {
	_, err := bunDB.NewInsert().Model(event).Exec(context.Background())
	require.NoError(t, err)
}

func TestGetAllEventsOrderedByDate(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	// Inserted out of order on purpose
	seedEvent(t, bunDB, &models.Event{Title: "Tech Conference", Date: "2026-11-03", Location: "Moscone Center"})
	seedEvent(t, bunDB, &models.Event{Title: "Jazz Night", Date: "2026-09-21", Location: "Blue Note"})
	seedEvent(t, bunDB, &models.Event{Title: "Rock Concert", Date: "2026-10-12", Location: "Madison Square Garden"})

	events, err := eventDB.GetAllEvents()
	assert.NoError(t, err)
	assert.Len(t, events, 3)
	assert.Equal(t, "Jazz Night", events[0].Title)
	assert.Equal(t, "Rock Concert", events[1].Title)
	assert.Equal(t, "Tech Conference", events[2].Title)
}

func TestGetAllEventsEmpty(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	events, err := eventDB.GetAllEvents()
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetEventByID(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	seeded := &models.Event{Title: "Concert", Date: "2026-10-12", Location: "Arena", Description: "Live show"}
	seedEvent(t, bunDB, seeded)

	event, err := eventDB.GetEventByID(seeded.ID)
	assert.NoError(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, "Concert", event.Title)
	assert.Equal(t, "Live show", event.Description)
}

func TestGetEventByIDNotFound(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	event, err := eventDB.GetEventByID(424242)
	assert.ErrorIs(t, err, models.ErrEventNotFound)
	assert.Nil(t, event)
}
