// Command smartpave generates the synthetic pavement-monitoring datasets:
// road network, condition history, maintenance records and traffic volumes,
// written as CSV and optionally ingested into the sqlite analysis store.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/smartpave-data/smartpave/internal/config"
	"github.com/smartpave-data/smartpave/internal/db"
	"github.com/smartpave-data/smartpave/internal/fsutil"
	"github.com/smartpave-data/smartpave/internal/report"
	"github.com/smartpave-data/smartpave/internal/synth"
)

var (
	configPath = flag.String("config", "", "Path to generator config JSON (optional)")
	outputDir  = flag.String("out", "data/raw", "Output directory for CSV files")
	dbPath     = flag.String("db", "", "Also ingest into a sqlite analysis store at this path")
	seed       = flag.Uint64("seed", 0, "Override the random seed (0 keeps the configured seed)")
)

func main() {
	flag.Parse()

	params := synth.DefaultParams()
	if *configPath != "" {
		cfg, err := config.LoadGeneratorConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		params = cfg.Params()
	}
	if *seed != 0 {
		params.Seed = *seed
	}

	if err := run(fsutil.OSFileSystem{}, params, *outputDir, *dbPath, time.Now()); err != nil {
		log.Fatalf("generation failed: %v", err)
	}
}

// run executes the four generation stages in order and writes their outputs.
func run(fs fsutil.FileSystem, params synth.Params, outDir, dbPath string, started time.Time) error {
	if err := fs.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	gen := synth.NewGenerator(params)

	log.Printf("generating road network (%d roads, seed %d)", params.RoadCount, params.Seed)
	net := gen.Network()
	log.Printf("generated %d segments across %d roads", len(net.Segments), len(net.Roads))

	log.Printf("generating pavement condition data %d-%d", params.StartYear, params.EndYear)
	conditions := gen.Conditions(net)
	log.Printf("generated %d condition records", len(conditions))

	log.Printf("generating maintenance records")
	maintenance := gen.Maintenance(conditions)
	log.Printf("generated %d maintenance records", len(maintenance))

	log.Printf("generating traffic data")
	traffic := gen.Traffic(net)
	log.Printf("generated %d traffic records", len(traffic))

	if err := writeCSV(fs, filepath.Join(outDir, "road_network.csv"), func(w io.Writer) error {
		return synth.WriteNetworkCSV(w, net)
	}); err != nil {
		return err
	}

	conditionName := fmt.Sprintf("pavement_condition_%d-%d.csv", params.StartYear, params.EndYear)
	if err := writeCSV(fs, filepath.Join(outDir, conditionName), func(w io.Writer) error {
		return synth.WriteConditionCSV(w, conditions)
	}); err != nil {
		return err
	}

	maintenanceName := fmt.Sprintf("maintenance_records_%d-%d.csv", params.StartYear, params.EndYear)
	if err := writeCSV(fs, filepath.Join(outDir, maintenanceName), func(w io.Writer) error {
		return synth.WriteMaintenanceCSV(w, maintenance)
	}); err != nil {
		return err
	}

	if err := writeCSV(fs, filepath.Join(outDir, "traffic_volume_data.csv"), func(w io.Writer) error {
		return synth.WriteTrafficCSV(w, traffic)
	}); err != nil {
		return err
	}

	if dbPath != "" {
		if err := ingest(dbPath, params.Seed, started, net, conditions, maintenance, traffic); err != nil {
			return err
		}
	}

	s := report.Summarize(net, conditions, maintenance, traffic)
	log.Printf("dataset summary: %d segments, %.1f miles, %d condition records, %d maintenance records",
		s.SegmentCount, s.TotalMiles, s.ConditionRecords, s.MaintenanceCount)
	log.Printf("total maintenance cost $%.0f (mean $%.0f per repair), mean condition score %.1f",
		s.TotalCost, s.MeanRepairCost, s.MeanConditionScore)

	return nil
}

func writeCSV(fs fsutil.FileSystem, path string, write func(io.Writer) error) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Printf("wrote %s", path)
	return nil
}

func ingest(path string, seed uint64, started time.Time, net *synth.Network,
	conditions []synth.ConditionObservation, maintenance []synth.MaintenanceEvent,
	traffic []synth.TrafficObservation) error {

	store, err := db.NewDB(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.RecordRun(seed, started, net)
	if err != nil {
		return err
	}
	if err := store.InsertNetwork(runID, net); err != nil {
		return err
	}
	if err := store.InsertConditions(conditions); err != nil {
		return err
	}
	if err := store.InsertMaintenance(maintenance); err != nil {
		return err
	}
	if err := store.InsertTraffic(traffic); err != nil {
		return err
	}
	log.Printf("ingested run %s into %s", runID, path)
	return nil
}
