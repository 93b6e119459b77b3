// Package db provides the local sqlite analysis store the generated datasets
// are ingested into.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/smartpave-data/smartpave/internal/synth"
)

// DB wraps the sqlite analysis store.
type DB struct {
	*sql.DB
}

// NewDB opens (creating if necessary) the analysis store at path and brings
// its schema up to date.
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analysis store: %w", err)
	}

	db := &DB{conn}
	if err := db.MigrateUp(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// RecordRun registers a generation run and returns its run ID.
func (db *DB) RecordRun(seed uint64, startedAt time.Time, net *synth.Network) (string, error) {
	runID := uuid.New().String()
	_, err := db.Exec(
		`INSERT INTO generation_runs (run_id, seed, started_at, road_count, segment_count)
		 VALUES (?, ?, ?, ?, ?)`,
		runID, int64(seed), startedAt.UTC(), len(net.Roads), len(net.Segments),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return runID, nil
}

// InsertNetwork stores the road network table for a run.
func (db *DB) InsertNetwork(runID string, net *synth.Network) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin network insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO road_segments (
			segment_id, run_id, road_id, road_type, lanes,
			latitude, longitude, traffic_volume, segment_length_miles
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare network insert: %w", err)
	}
	defer stmt.Close()

	for _, seg := range net.Segments {
		road := net.Road(seg.RoadID)
		if _, err := stmt.Exec(
			seg.ID, runID, road.ID, road.Category, road.Lanes,
			seg.Latitude, seg.Longitude, road.TrafficVolume, seg.LengthMiles,
		); err != nil {
			return fmt.Errorf("insert segment %s: %w", seg.ID, err)
		}
	}

	return tx.Commit()
}

// InsertConditions stores the condition history. Record IDs are derived from
// the (segment, date) pair, which is unique by construction.
func (db *DB) InsertConditions(observations []synth.ConditionObservation) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin condition insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO pavement_condition (
			record_id, segment_id, date, condition_score, roughness_index,
			cracking_percent, pothole_count, precipitation, freeze_thaw_cycles,
			temperature_avg
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare condition insert: %w", err)
	}
	defer stmt.Close()

	for _, obs := range observations {
		recordID := fmt.Sprintf("%s_%s", obs.SegmentID, obs.Date.Format("20060102"))
		if _, err := stmt.Exec(
			recordID, obs.SegmentID, obs.Date.Format("2006-01-02"),
			obs.ConditionScore, obs.RoughnessIndex, obs.CrackingPercent,
			obs.PotholeCount, obs.Precipitation, obs.FreezeThawCycles,
			obs.TemperatureAvg,
		); err != nil {
			return fmt.Errorf("insert condition %s: %w", recordID, err)
		}
	}

	return tx.Commit()
}

// InsertMaintenance stores the maintenance records.
func (db *DB) InsertMaintenance(events []synth.MaintenanceEvent) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin maintenance insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO maintenance_records (
			maintenance_id, segment_id, date, repair_type, cost,
			effectiveness_score, contractor, weather_delay_days
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare maintenance insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(
			ev.ID, ev.SegmentID, ev.Date.Format("2006-01-02"), ev.RepairType,
			ev.Cost, ev.EffectivenessScore, ev.Contractor, ev.WeatherDelayDays,
		); err != nil {
			return fmt.Errorf("insert maintenance %s: %w", ev.ID, err)
		}
	}

	return tx.Commit()
}

// InsertTraffic stores the monthly traffic series.
func (db *DB) InsertTraffic(observations []synth.TrafficObservation) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin traffic insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO traffic_volume (
			segment_id, year, month, avg_daily_traffic, peak_hour_factor,
			truck_percentage
		) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare traffic insert: %w", err)
	}
	defer stmt.Close()

	for _, obs := range observations {
		if _, err := stmt.Exec(
			obs.SegmentID, obs.Year, obs.Month, obs.AvgDailyTraffic,
			obs.PeakHourFactor, obs.TruckPercentage,
		); err != nil {
			return fmt.Errorf("insert traffic %s %d-%02d: %w", obs.SegmentID, obs.Year, obs.Month, err)
		}
	}

	return tx.Commit()
}
