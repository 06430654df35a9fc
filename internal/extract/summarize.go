package extract

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"gbd-extract/internal/model"
	"gbd-extract/pkg/utils"
)

// SummarizeDraws collapses the draw_* columns of a draws table into
// mean/lower/upper columns (2.5th and 97.5th percentiles across draws).
// Identifier columns keep their original order; the three summary columns
// are appended after them.
func SummarizeDraws(table model.ResultTable) (model.ResultTable, error) {
	var idIdx, drawIdx []int
	for i, col := range table.Columns {
		if strings.HasPrefix(col, "draw_") {
			drawIdx = append(drawIdx, i)
		} else {
			idIdx = append(idIdx, i)
		}
	}
	if len(drawIdx) == 0 {
		return model.ResultTable{}, fmt.Errorf("no draw columns to summarize")
	}

	out := model.ResultTable{
		Columns: make([]string, 0, len(idIdx)+3),
		Rows:    make([][]interface{}, 0, table.NumRows()),
	}
	for _, i := range idIdx {
		out.Columns = append(out.Columns, table.Columns[i])
	}
	out.Columns = append(out.Columns, "mean", "lower", "upper")

	for _, row := range table.Rows {
		draws := make([]float64, len(drawIdx))
		for j, i := range drawIdx {
			draws[j] = utils.Numeric(row[i])
		}

		mean, err := stats.Mean(draws)
		if err != nil {
			return model.ResultTable{}, fmt.Errorf("mean over draws: %w", err)
		}
		// Nearest-rank percentiles stay defined even for tiny draw counts.
		lower, err := stats.PercentileNearestRank(draws, 2.5)
		if err != nil {
			return model.ResultTable{}, fmt.Errorf("lower percentile over draws: %w", err)
		}
		upper, err := stats.PercentileNearestRank(draws, 97.5)
		if err != nil {
			return model.ResultTable{}, fmt.Errorf("upper percentile over draws: %w", err)
		}

		summarized := make([]interface{}, 0, len(idIdx)+3)
		for _, i := range idIdx {
			summarized = append(summarized, row[i])
		}
		summarized = append(summarized, mean, lower, upper)
		out.Rows = append(out.Rows, summarized)
	}

	return out, nil
}
