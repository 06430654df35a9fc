package extract

import (
	"context"
	"fmt"
	"time"

	"gbd-extract/internal/model"
	"gbd-extract/internal/store"
)

// Retriever is the single external collaborator of an extraction run. The
// concrete client is injected by the caller; nothing here reaches for a
// global environment.
type Retriever interface {
	GetCauseDraws(ctx context.Context, filter model.DrawsFilter) (model.ResultTable, error)
	GetPopulations(ctx context.Context, filter model.PopulationFilter) (model.ResultTable, error)
}

// ------------------- Extraction Runner -------------------

// Run executes one extraction: build the filter, perform the single remote
// retrieval, export the result as CSV. jobID may be empty for CLI runs, in
// which case no tracking rows are written.
func Run(ctx context.Context, jobID string, spec model.ExtractionJobSpec, src Retriever) (err error) {
	start := time.Now()
	fmt.Printf("🚀 Starting %s extraction for location %d\n", spec.Kind, spec.LocationID)

	if jobID != "" {
		store.UpdateExtractionStatus(jobID, "running")
	}
	defer func() {
		if err != nil && jobID != "" {
			store.UpdateExtractionStatus(jobID, "failed")
			store.SaveExtractionError(jobID, err)
		}
	}()

	// --- RETRIEVAL STAGE ---
	var table model.ResultTable
	switch spec.Kind {
	case model.KindDraws:
		filter := model.DrawsFilterFor(spec.LocationID, spec.GBDRoundID)
		fmt.Printf("🌐 Fetching deaths draws: cause=%d location=%d round=%d\n",
			filter.CauseID, spec.LocationID, filter.GBDRoundID)
		if jobID != "" {
			store.UpdateExtractionStatus(jobID, "fetching")
			store.SaveExtractionLog(jobID, "retrieval", "info", "Fetching cause draws", map[string]interface{}{
				"cause_id":     filter.CauseID,
				"location_id":  spec.LocationID,
				"gbd_round_id": filter.GBDRoundID,
			})
		}
		table, err = src.GetCauseDraws(ctx, filter)
	case model.KindPopulation:
		filter := model.PopulationFilterFor(spec.LocationID)
		fmt.Printf("🌐 Fetching populations: location=%d years=%v\n", spec.LocationID, filter.YearIDs)
		if jobID != "" {
			store.UpdateExtractionStatus(jobID, "fetching")
			store.SaveExtractionLog(jobID, "retrieval", "info", "Fetching populations", map[string]interface{}{
				"location_id": spec.LocationID,
				"year_ids":    filter.YearIDs,
			})
		}
		table, err = src.GetPopulations(ctx, filter)
	default:
		return fmt.Errorf("unknown extraction kind: %q", spec.Kind)
	}
	if err != nil {
		return fmt.Errorf("remote retrieval failed: %w", err)
	}

	fmt.Printf("🌐 Retrieval done: %d rows, %d columns\n", table.NumRows(), len(table.Columns))
	if table.NumRows() == 0 {
		// Empty-but-successful responses are valid: the location simply has
		// no matching records. The export still writes the header row.
		fmt.Printf("⚠️ Empty result set for location %d, writing header-only file\n", spec.LocationID)
	}

	// --- SUMMARIZE STAGE (optional) ---
	if spec.Summarize {
		table, err = SummarizeDraws(table)
		if err != nil {
			return fmt.Errorf("summarize failed: %w", err)
		}
		fmt.Printf("📊 Summarized draws: %d rows, %d columns\n", table.NumRows(), len(table.Columns))
	}

	// --- EXPORT STAGE ---
	if jobID != "" {
		store.UpdateExtractionStatus(jobID, "exporting")
	}
	rows, err := WriteCSV(table, spec.OutputPath)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("💾 Export done: %d records written to %s\n", rows, spec.OutputPath)

	if jobID != "" {
		store.SaveOutputFile(jobID, spec.OutputFile, spec.OutputPath, rows)
		store.SaveExtractionLog(jobID, "export", "info", "Export completed", map[string]interface{}{
			"path":         spec.OutputPath,
			"record_count": rows,
			"duration_ms":  time.Since(start).Milliseconds(),
		})
		store.UpdateExtractionStatus(jobID, "completed")
	}

	fmt.Printf("🏁 Extraction completed for location %d in %v\n", spec.LocationID, time.Since(start))
	return nil
}
