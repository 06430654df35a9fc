package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gbd-extract/internal/model"
)

func TestValidateJobSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    model.ExtractionJobSpec
		wantErr string
	}{
		{
			name: "valid draws spec",
			spec: model.ExtractionJobSpec{Kind: model.KindDraws, LocationID: 102, GBDRoundID: 5, OutputFile: "deaths.csv"},
		},
		{
			name: "valid population spec",
			spec: model.ExtractionJobSpec{Kind: model.KindPopulation, LocationID: 161, OutputFile: "pop.csv"},
		},
		{
			name:    "draws without round",
			spec:    model.ExtractionJobSpec{Kind: model.KindDraws, LocationID: 102, OutputFile: "deaths.csv"},
			wantErr: "gbd_round_id",
		},
		{
			name:    "unknown kind",
			spec:    model.ExtractionJobSpec{Kind: "incidence", LocationID: 102, OutputFile: "x.csv"},
			wantErr: "unknown extraction kind",
		},
		{
			name:    "missing location",
			spec:    model.ExtractionJobSpec{Kind: model.KindPopulation, OutputFile: "pop.csv"},
			wantErr: "location_id",
		},
		{
			name:    "missing output file",
			spec:    model.ExtractionJobSpec{Kind: model.KindPopulation, LocationID: 161},
			wantErr: "output_file is required",
		},
		{
			name:    "output file with path",
			spec:    model.ExtractionJobSpec{Kind: model.KindPopulation, LocationID: 161, OutputFile: "../escape.csv"},
			wantErr: "bare file name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJobSpec(tt.spec)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
