// Command pave-report renders chart artifacts from an ingested analysis
// store: an HTML page with the condition trend and maintenance spend, and a
// PNG histogram of condition scores.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/smartpave-data/smartpave/internal/db"
	"github.com/smartpave-data/smartpave/internal/report"
)

var (
	dbPath = flag.String("db", "smartpave.db", "Path to the sqlite analysis store")
	outDir = flag.String("out", "reports", "Output directory for report artifacts")
)

func main() {
	flag.Parse()

	if _, err := os.Stat(*dbPath); err != nil {
		log.Fatalf("analysis store not found at %s (generate with the -db flag first)", *dbPath)
	}

	store, err := db.NewDB(*dbPath)
	if err != nil {
		log.Fatalf("failed to open analysis store: %v", err)
	}
	defer store.Close()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	trend, err := store.AvgScoreByDate()
	if err != nil {
		log.Fatalf("failed to load condition trend: %v", err)
	}
	costs, err := store.CostByRepairType()
	if err != nil {
		log.Fatalf("failed to load repair costs: %v", err)
	}

	htmlPath := filepath.Join(*outDir, "pavement_report.html")
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("failed to create report file: %v", err)
	}
	if err := report.RenderCharts(f, trend, costs); err != nil {
		f.Close()
		log.Fatalf("failed to render charts: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("failed to close report file: %v", err)
	}
	log.Printf("wrote %s", htmlPath)

	scores, err := store.ConditionScores()
	if err != nil {
		log.Fatalf("failed to load condition scores: %v", err)
	}
	histPath := filepath.Join(*outDir, "condition_histogram.png")
	if err := report.SaveScoreHistogram(scores, histPath); err != nil {
		log.Fatalf("failed to save histogram: %v", err)
	}
	log.Printf("wrote %s", histPath)
}
