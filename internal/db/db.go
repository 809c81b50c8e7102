package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS journeys (
    id                INTEGER PRIMARY KEY,
    name              TEXT NOT NULL,
    description       TEXT,
    display_date      TEXT,
    cover_emoji       TEXT,
    total_distance_km REAL NOT NULL DEFAULT 0 CHECK(total_distance_km >= 0),
    created_at        TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS stops (
    id                    INTEGER PRIMARY KEY,
    journey_id            INTEGER NOT NULL REFERENCES journeys(id),
    position              INTEGER NOT NULL,
    stop_id               INTEGER NOT NULL,
    title                 TEXT NOT NULL,
    address               TEXT,
    notes                 TEXT,
    latitude              REAL NOT NULL,
    longitude             REAL NOT NULL,
    visited_at_ms         INTEGER NOT NULL DEFAULT 0,
    stop_type             TEXT NOT NULL CHECK(stop_type IN ('start','visit','food','photo','rest','end')),
    distance_from_prev_km REAL NOT NULL DEFAULT 0 CHECK(distance_from_prev_km >= 0),
    duration_mins         INTEGER NOT NULL DEFAULT 0 CHECK(duration_mins >= 0),
    restaurant_code       TEXT,
    image_url             TEXT,
    is_prime              INTEGER NOT NULL DEFAULT 0 CHECK(is_prime IN (0,1)),
    is_chain              INTEGER NOT NULL DEFAULT 0 CHECK(is_chain IN (0,1)),
    total_amount          TEXT,
    discount_amount       TEXT,
    UNIQUE(journey_id, position)
);

CREATE INDEX IF NOT EXISTS idx_stops_journey_position ON stops(journey_id, position);
CREATE INDEX IF NOT EXISTS idx_stops_restaurant_code ON stops(restaurant_code);
`

// Open opens or creates the SQLite database and initializes the schema.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
