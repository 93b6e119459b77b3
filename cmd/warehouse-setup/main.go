// Command warehouse-setup plans and optionally executes the warehouse DDL
// sequence for the pavement analysis environment. Without -execute it only
// prints the statements, in order, for review.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/smartpave-data/smartpave/internal/warehouse"
)

var (
	configPath = flag.String("config", "config/warehouse.yaml", "Path to warehouse settings YAML")
	execute    = flag.Bool("execute", false, "Execute the DDL instead of printing it")
	driver     = flag.String("driver", "", "database/sql driver name (required with -execute)")
	dsn        = flag.String("dsn", "", "Connection string (required with -execute)")
)

func main() {
	flag.Parse()

	cfg, err := warehouse.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load warehouse config: %v", err)
	}

	log.Printf("warehouse setup plan: database=%s schema=%s size=%s",
		cfg.Database, cfg.Schema, cfg.WarehouseSize)

	if !*execute {
		for _, stmt := range warehouse.Statements(cfg) {
			fmt.Printf("-- %s\n%s;\n\n", stmt.Label, stmt.SQL)
		}
		log.Printf("dry run only; pass -execute with -driver and -dsn to apply")
		return
	}

	if *driver == "" || *dsn == "" {
		log.Fatal("-execute requires both -driver and -dsn")
	}

	conn, err := sql.Open(*driver, *dsn)
	if err != nil {
		log.Fatalf("failed to open warehouse connection: %v", err)
	}
	defer conn.Close()

	if err := warehouse.Setup(context.Background(), conn, cfg); err != nil {
		log.Fatalf("warehouse setup aborted: %v", err)
	}
	log.Printf("warehouse setup complete")
}
