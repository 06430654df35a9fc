package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"gbd-extract/internal/config"
	"gbd-extract/internal/extract"
	"gbd-extract/internal/gbd"
	"gbd-extract/internal/model"
)

// extract-population pulls scaled population counts for one location and
// writes them to a CSV file.
//
// Usage: extract-population <location_id> <output_path>
func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: extract-population <location_id> <output_path>")
	}

	locationID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid location_id %q: %w", args[0], err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spec := model.ExtractionJobSpec{
		Kind:       model.KindPopulation,
		LocationID: locationID,
		OutputPath: args[1],
	}

	return extract.Run(context.Background(), "", spec, gbd.NewClient(cfg.GBDAPIBaseURL))
}
