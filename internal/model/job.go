package model

import "time"

// Extraction kinds accepted by the CLI tools and the API.
const (
	KindDraws      = "draws"
	KindPopulation = "population"
)

// ExtractionJobSpec describes one extraction run: which pull to perform,
// how to filter it and where the CSV goes.
type ExtractionJobSpec struct {
	Kind       string `json:"kind"`                   // "draws" or "population"
	LocationID int    `json:"location_id"`
	GBDRoundID int    `json:"gbd_round_id,omitempty"` // draws only
	Summarize  bool   `json:"summarize,omitempty"`    // collapse draw columns to mean/lower/upper
	OutputFile string `json:"output_file"`            // bare file name, API jobs only
	OutputPath string `json:"-"`                      // resolved full path
}

// ExportResult records the outcome of a CSV export.
type ExportResult struct {
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
}
