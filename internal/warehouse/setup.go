package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smartpave-data/smartpave/internal/monitoring"
)

// Execer is the narrow execution surface Setup needs. *sql.DB satisfies it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Statement is one labelled step of the setup sequence.
type Statement struct {
	Label string
	SQL   string
}

// Statements builds the fixed DDL sequence for a configuration. The order is
// load-bearing: later statements assume the database and schema selected by
// the earlier ones.
func Statements(cfg *Config) []Statement {
	return []Statement{
		{"create database", fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", cfg.Database)},
		{"use database", fmt.Sprintf("USE DATABASE %s", cfg.Database)},
		{"create schema", fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", cfg.Schema)},
		{"use schema", fmt.Sprintf("USE SCHEMA %s", cfg.Schema)},
		{"create raw data stage", fmt.Sprintf("CREATE STAGE IF NOT EXISTS %s", cfg.RawDataStage)},
		{"create processed data stage", fmt.Sprintf("CREATE STAGE IF NOT EXISTS %s", cfg.ProcessedDataStage)},
		{"create models stage", fmt.Sprintf("CREATE STAGE IF NOT EXISTS %s", cfg.ModelsStage)},
		{"create road_segments table", createRoadSegmentsSQL},
		{"create pavement_condition table", createPavementConditionSQL},
		{"create maintenance_records table", createMaintenanceRecordsSQL},
		{"create pavement_analysis view", createPavementAnalysisSQL},
	}
}

// Setup executes the DDL sequence. The first failure aborts the whole setup;
// there are no partial-failure or retry semantics.
func Setup(ctx context.Context, ex Execer, cfg *Config) error {
	for _, stmt := range Statements(cfg) {
		if _, err := ex.ExecContext(ctx, stmt.SQL); err != nil {
			monitoring.Logf("warehouse setup failed at %q: %v", stmt.Label, err)
			return fmt.Errorf("warehouse setup %s: %w", stmt.Label, err)
		}
		monitoring.Logf("warehouse setup: %s ok", stmt.Label)
	}
	return nil
}

const createRoadSegmentsSQL = `
CREATE TABLE IF NOT EXISTS road_segments (
    segment_id VARCHAR(50) PRIMARY KEY,
    road_id VARCHAR(50),
    road_type VARCHAR(50),
    lanes INTEGER,
    latitude FLOAT,
    longitude FLOAT,
    traffic_volume INTEGER,
    segment_length_miles FLOAT
)`

const createPavementConditionSQL = `
CREATE TABLE IF NOT EXISTS pavement_condition (
    record_id VARCHAR(50) PRIMARY KEY,
    segment_id VARCHAR(50),
    date DATE,
    condition_score FLOAT,
    roughness_index FLOAT,
    cracking_percent FLOAT,
    pothole_count INTEGER,
    precipitation FLOAT,
    freeze_thaw_cycles INTEGER,
    temperature_avg FLOAT,
    FOREIGN KEY (segment_id) REFERENCES road_segments(segment_id)
)`

const createMaintenanceRecordsSQL = `
CREATE TABLE IF NOT EXISTS maintenance_records (
    maintenance_id VARCHAR(50) PRIMARY KEY,
    segment_id VARCHAR(50),
    date DATE,
    repair_type VARCHAR(50),
    cost FLOAT,
    effectiveness_score FLOAT,
    contractor VARCHAR(100),
    weather_delay_days INTEGER,
    FOREIGN KEY (segment_id) REFERENCES road_segments(segment_id)
)`

const createPavementAnalysisSQL = `
CREATE OR REPLACE VIEW pavement_analysis AS
SELECT
    pc.segment_id,
    rs.road_type,
    rs.lanes,
    rs.traffic_volume,
    pc.date,
    pc.condition_score,
    pc.roughness_index,
    pc.cracking_percent,
    pc.pothole_count,
    COALESCE(mr.total_cost, 0) as total_maintenance_cost,
    COALESCE(mr.repair_count, 0) as repair_count
FROM pavement_condition pc
JOIN road_segments rs ON pc.segment_id = rs.segment_id
LEFT JOIN (
    SELECT
        segment_id,
        SUM(cost) as total_cost,
        COUNT(*) as repair_count
    FROM maintenance_records
    GROUP BY segment_id
) mr ON pc.segment_id = mr.segment_id`
