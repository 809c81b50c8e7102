package db

import (
	"database/sql"
	"fmt"

	"journeymap/internal/model"
)

// ListJourneys retrieves every journey with its stops in stored order.
func ListJourneys(db *sql.DB) ([]model.Journey, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), COALESCE(display_date, ''), COALESCE(cover_emoji, ''), total_distance_km
		FROM journeys
		ORDER BY id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list journeys: %w", err)
	}
	defer rows.Close()

	var journeys []model.Journey
	index := make(map[int64]int)
	for rows.Next() {
		var j model.Journey
		if err := rows.Scan(&j.ID, &j.Name, &j.Description, &j.Date, &j.CoverEmoji, &j.TotalDistanceKm); err != nil {
			return nil, fmt.Errorf("failed to scan journey row: %w", err)
		}
		index[j.ID] = len(journeys)
		journeys = append(journeys, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journey rows: %w", err)
	}

	stops, err := listStops(db)
	if err != nil {
		return nil, err
	}
	for _, s := range stops {
		if i, ok := index[s.journeyID]; ok {
			journeys[i].Stops = append(journeys[i].Stops, s.Stop)
		}
	}

	return journeys, nil
}

type stopRow struct {
	model.Stop
	journeyID int64
}

func listStops(db *sql.DB) ([]stopRow, error) {
	query := `
		SELECT
			journey_id,
			stop_id,
			title,
			COALESCE(address, ''),
			COALESCE(notes, ''),
			latitude,
			longitude,
			visited_at_ms,
			stop_type,
			distance_from_prev_km,
			duration_mins,
			COALESCE(restaurant_code, ''),
			COALESCE(image_url, ''),
			is_prime,
			is_chain,
			COALESCE(total_amount, ''),
			COALESCE(discount_amount, '')
		FROM stops
		ORDER BY journey_id, position
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stops: %w", err)
	}
	defer rows.Close()

	var results []stopRow
	for rows.Next() {
		var r stopRow
		var stopType string
		var isPrime, isChain int
		if err := rows.Scan(
			&r.journeyID, &r.ID, &r.Title, &r.Address, &r.Notes, &r.Latitude, &r.Longitude, &r.Timestamp,
			&stopType, &r.DistanceFromPrevKm, &r.DurationMins, &r.RestaurantCode, &r.Image,
			&isPrime, &isChain, &r.TotalAmount, &r.DiscountAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stop row: %w", err)
		}
		r.Type = model.ParseStopType(stopType)
		r.IsPrime = isPrime == 1
		r.IsChain = isChain == 1
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stop rows: %w", err)
	}

	return results, nil
}

// InsertJourney stores j and its stops in a single transaction.
func InsertJourney(db *sql.DB, j model.Journey) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertJourney(tx, j); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit journey: %w", err)
	}
	return nil
}

func insertJourney(tx *sql.Tx, j model.Journey) error {
	var description, date, emoji interface{}
	if j.Description != "" {
		description = j.Description
	}
	if j.Date != "" {
		date = j.Date
	}
	if j.CoverEmoji != "" {
		emoji = j.CoverEmoji
	}

	if _, err := tx.Exec(
		`INSERT INTO journeys (id, name, description, display_date, cover_emoji, total_distance_km) VALUES (?, ?, ?, ?, ?, ?)`,
		j.ID, j.Name, description, date, emoji, j.TotalDistanceKm,
	); err != nil {
		return fmt.Errorf("failed to insert journey: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO stops (
			journey_id, position, stop_id, title, address, notes, latitude, longitude, visited_at_ms,
			stop_type, distance_from_prev_km, duration_mins, restaurant_code, image_url,
			is_prime, is_chain, total_amount, discount_amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare stop insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range j.Stops {
		if _, err := stmt.Exec(
			j.ID, i, s.ID, s.Title, nullString(s.Address), nullString(s.Notes), s.Latitude, s.Longitude, s.Timestamp,
			s.Type.String(), s.DistanceFromPrevKm, s.DurationMins, nullString(s.RestaurantCode), nullString(s.Image),
			boolInt(s.IsPrime), boolInt(s.IsChain), nullString(s.TotalAmount), nullString(s.DiscountAmount),
		); err != nil {
			return fmt.Errorf("failed to insert stop %d: %w", s.ID, err)
		}
	}
	return nil
}

// DeleteJourney removes a journey and its stops.
func DeleteJourney(db *sql.DB, id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM stops WHERE journey_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete stops: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM journeys WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete journey: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// CountJourneys returns the number of stored journeys.
func CountJourneys(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM journeys").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count journeys: %w", err)
	}
	return n, nil
}

// SeedIfEmpty inserts journeys when the database holds none.
// Either every journey is stored or none is. It reports whether seeding
// happened.
func SeedIfEmpty(db *sql.DB, journeys []model.Journey) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRow("SELECT COUNT(*) FROM journeys").Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count journeys: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	for _, j := range journeys {
		if err := insertJourney(tx, j); err != nil {
			return false, fmt.Errorf("failed to seed journey %d: %w", j.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}
	return true, nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
