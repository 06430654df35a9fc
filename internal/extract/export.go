package extract

import (
	"encoding/csv"
	"fmt"
	"os"

	"gbd-extract/internal/model"
	"gbd-extract/pkg/utils"
)

// WriteCSV writes the table to path as comma-separated UTF-8 with a header
// row, overwriting any existing file. Column and row order follow the table
// as-is. The target directory must already exist. Returns the number of
// data rows written.
func WriteCSV(table model.ResultTable, path string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(table.Columns); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	recordCount := 0
	for _, row := range table.Rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = utils.FormatValue(cell)
		}
		if err := writer.Write(record); err != nil {
			return recordCount, fmt.Errorf("failed to write row: %w", err)
		}
		recordCount++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return recordCount, fmt.Errorf("failed to flush CSV: %w", err)
	}
	if err := file.Close(); err != nil {
		return recordCount, fmt.Errorf("failed to close file: %w", err)
	}

	return recordCount, nil
}
