package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbd-extract/internal/model"
)

func TestSummarizeDraws(t *testing.T) {
	table := model.ResultTable{
		Columns: []string{"cause_id", "age_group_id", "draw_0", "draw_1", "draw_2", "draw_3"},
		Rows: [][]interface{}{
			{294, 2, 1.0, 2.0, 3.0, 4.0},
			{294, 3, 10.0, 10.0, 10.0, 10.0},
		},
	}

	out, err := SummarizeDraws(table)
	require.NoError(t, err)

	assert.Equal(t, []string{"cause_id", "age_group_id", "mean", "lower", "upper"}, out.Columns)
	require.Equal(t, 2, out.NumRows())

	assert.Equal(t, 294, out.Rows[0][0])
	assert.Equal(t, 2, out.Rows[0][1])
	assert.InDelta(t, 2.5, out.Rows[0][2].(float64), 1e-9)

	// Constant draws collapse to the constant everywhere.
	assert.InDelta(t, 10.0, out.Rows[1][2].(float64), 1e-9)
	assert.InDelta(t, 10.0, out.Rows[1][3].(float64), 1e-9)
	assert.InDelta(t, 10.0, out.Rows[1][4].(float64), 1e-9)
}

func TestSummarizeDrawsBoundsOrdering(t *testing.T) {
	table := model.ResultTable{
		Columns: []string{"age_group_id", "draw_0", "draw_1", "draw_2", "draw_3", "draw_4"},
		Rows: [][]interface{}{
			{2, 5.0, 1.0, 4.0, 2.0, 3.0},
		},
	}

	out, err := SummarizeDraws(table)
	require.NoError(t, err)

	mean := out.Rows[0][1].(float64)
	lower := out.Rows[0][2].(float64)
	upper := out.Rows[0][3].(float64)

	assert.InDelta(t, 3.0, mean, 1e-9)
	assert.LessOrEqual(t, lower, mean)
	assert.GreaterOrEqual(t, upper, mean)
}

func TestSummarizeDrawsNoDrawColumns(t *testing.T) {
	table := model.ResultTable{
		Columns: []string{"age_group_id", "pop_scaled"},
		Rows:    [][]interface{}{{2, 100.0}},
	}

	_, err := SummarizeDraws(table)
	assert.Error(t, err)
}
