package extract

import (
	"fmt"
	"path/filepath"

	"gbd-extract/internal/model"
)

// ValidateJobSpec checks an API-submitted job spec before it is persisted.
// CLI runs skip this: their arguments are already positional and typed.
func ValidateJobSpec(spec model.ExtractionJobSpec) error {
	switch spec.Kind {
	case model.KindDraws:
		if spec.GBDRoundID <= 0 {
			return fmt.Errorf("gbd_round_id is required for draws extractions")
		}
	case model.KindPopulation:
		// no round for population pulls
	default:
		return fmt.Errorf("unknown extraction kind: %q", spec.Kind)
	}

	if spec.LocationID <= 0 {
		return fmt.Errorf("location_id must be positive")
	}
	if spec.OutputFile == "" {
		return fmt.Errorf("output_file is required")
	}
	if spec.OutputFile != filepath.Base(spec.OutputFile) {
		return fmt.Errorf("output_file must be a bare file name, not a path")
	}
	return nil
}
