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

// extract-draws pulls deaths draws for one location and round and writes
// them to a CSV file.
//
// Usage: extract-draws <location_id> <gbd_round_id> <output_path>
func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: extract-draws <location_id> <gbd_round_id> <output_path>")
	}

	locationID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid location_id %q: %w", args[0], err)
	}
	gbdRoundID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid gbd_round_id %q: %w", args[1], err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spec := model.ExtractionJobSpec{
		Kind:       model.KindDraws,
		LocationID: locationID,
		GBDRoundID: gbdRoundID,
		OutputPath: args[2],
	}

	return extract.Run(context.Background(), "", spec, gbd.NewClient(cfg.GBDAPIBaseURL))
}
