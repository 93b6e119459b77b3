package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpave-data/smartpave/internal/monitoring"
)

func init() {
	monitoring.SetLogger(nil)
}

func testConfig() *Config {
	return &Config{
		Database:           "SMARTPAVE_DB",
		Schema:             "ANALYTICS",
		WarehouseSize:      "MEDIUM",
		RawDataStage:       "RAW_DATA_STAGE",
		ProcessedDataStage: "PROCESSED_DATA_STAGE",
		ModelsStage:        "MODELS_STAGE",
	}
}

func TestStatements_Sequence(t *testing.T) {
	stmts := Statements(testConfig())
	require.Len(t, stmts, 11)

	assert.Equal(t, "CREATE DATABASE IF NOT EXISTS SMARTPAVE_DB", stmts[0].SQL)
	assert.Equal(t, "USE DATABASE SMARTPAVE_DB", stmts[1].SQL)
	assert.Equal(t, "CREATE SCHEMA IF NOT EXISTS ANALYTICS", stmts[2].SQL)
	assert.Equal(t, "USE SCHEMA ANALYTICS", stmts[3].SQL)
	assert.Equal(t, "CREATE STAGE IF NOT EXISTS RAW_DATA_STAGE", stmts[4].SQL)
	assert.Equal(t, "CREATE STAGE IF NOT EXISTS PROCESSED_DATA_STAGE", stmts[5].SQL)
	assert.Equal(t, "CREATE STAGE IF NOT EXISTS MODELS_STAGE", stmts[6].SQL)

	assert.Contains(t, stmts[7].SQL, "CREATE TABLE IF NOT EXISTS road_segments")
	assert.Contains(t, stmts[8].SQL, "CREATE TABLE IF NOT EXISTS pavement_condition")
	assert.Contains(t, stmts[9].SQL, "CREATE TABLE IF NOT EXISTS maintenance_records")
	assert.Contains(t, stmts[10].SQL, "CREATE OR REPLACE VIEW pavement_analysis")
}

// fakeExecer records executed statements and fails on a chosen label's SQL.
type fakeExecer struct {
	executed []string
	failOn   string
}

func (f *fakeExecer) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	if f.failOn != "" && strings.Contains(query, f.failOn) {
		return nil, errors.New("simulated warehouse failure")
	}
	f.executed = append(f.executed, query)
	return nil, nil
}

func TestSetup_ExecutesAllInOrder(t *testing.T) {
	ex := &fakeExecer{}
	require.NoError(t, Setup(context.Background(), ex, testConfig()))

	stmts := Statements(testConfig())
	require.Len(t, ex.executed, len(stmts))
	for i, stmt := range stmts {
		assert.Equal(t, stmt.SQL, ex.executed[i])
	}
}

// TestSetup_AbortsOnFirstFailure checks the whole setup stops at the first
// failed statement: nothing after it runs.
func TestSetup_AbortsOnFirstFailure(t *testing.T) {
	ex := &fakeExecer{failOn: "CREATE SCHEMA"}
	err := Setup(context.Background(), ex, testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create schema")

	// Only the statements before the failure executed.
	require.Len(t, ex.executed, 2)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.yaml")
	content := `
database: SMARTPAVE_DB
schema: ANALYTICS
warehouse_size: LARGE
raw_data_stage: RAW
processed_data_stage: PROCESSED
models_stage: MODELS
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "SMARTPAVE_DB", cfg.Database)
	assert.Equal(t, "LARGE", cfg.WarehouseSize)
	assert.Equal(t, "PROCESSED", cfg.ProcessedDataStage)
}

func TestLoadConfig_MissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: ONLY_DB\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required field")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
