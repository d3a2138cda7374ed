package repositories

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Initialize the shipment schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		load_id TEXT PRIMARY KEY,
		carrier_id TEXT NOT NULL,
		origin_zip3 TEXT NOT NULL,
		dest_zip3 TEXT NOT NULL,
		otd TEXT NOT NULL CHECK (otd IN ('Early', 'OnTime', 'Late')),
		actual_transit_days DOUBLE PRECISION NOT NULL,
		goal_transit_days DOUBLE PRECISION NOT NULL,
		ship_date DATE
	);
	`

	createLaneIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_shipments_lane
	ON shipments(origin_zip3, dest_zip3);
	`

	statements := []string{
		createShipmentsQuery,
		createLaneIndexQuery,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}

	return nil
}

// SeedFromCSV loads shipment rows from a CSV export.
//
// Expected header: load_id,carrier_id,origin_zip3,dest_zip3,otd,
// actual_transit_days,goal_transit_days,ship_date. Existing load_ids are
// left untouched so re-running ingestion is safe.
func SeedFromCSV(db *sql.DB, path string) error {
	if db == nil {
		return errors.New("seed shipments: DB is nil")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("seed shipments: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 8

	if _, err := r.Read(); err != nil {
		return fmt.Errorf("seed shipments: read header: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed shipments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO shipments (
		load_id, carrier_id, origin_zip3, dest_zip3, otd,
		actual_transit_days, goal_transit_days, ship_date
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (load_id) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("seed shipments: prepare insert: %w", err)
	}
	defer stmt.Close()

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("seed shipments: read line %d: %w", line+1, err)
		}
		line++

		actual, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			return fmt.Errorf("seed shipments: line %d: actual_transit_days: %w", line, err)
		}
		goal, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			return fmt.Errorf("seed shipments: line %d: goal_transit_days: %w", line, err)
		}

		otd := record[4]
		if otd != "Early" && otd != "OnTime" && otd != "Late" {
			return fmt.Errorf("seed shipments: line %d: unknown otd %q", line, otd)
		}

		_, err = stmt.Exec(record[0], record[1], record[2], record[3], otd, actual, goal, record[7])
		if err != nil {
			return fmt.Errorf("seed shipments: line %d: insert load_id=%q: %w", line, record[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed shipments: commit: %w", err)
	}

	return nil
}
