package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbd-extract/internal/model"
)

// fakeRetriever records the filter it was called with and plays back a
// canned table or error.
type fakeRetriever struct {
	drawsFilter *model.DrawsFilter
	popFilter   *model.PopulationFilter
	calls       int
	table       model.ResultTable
	err         error
}

func (f *fakeRetriever) GetCauseDraws(ctx context.Context, filter model.DrawsFilter) (model.ResultTable, error) {
	f.calls++
	f.drawsFilter = &filter
	return f.table, f.err
}

func (f *fakeRetriever) GetPopulations(ctx context.Context, filter model.PopulationFilter) (model.ResultTable, error) {
	f.calls++
	f.popFilter = &filter
	return f.table, f.err
}

func TestRunDrawsEndToEnd(t *testing.T) {
	src := &fakeRetriever{
		table: model.ResultTable{
			Columns: []string{"cause_id", "location_id", "age_group_id", "measure_id", "draw_0", "draw_1"},
			Rows: [][]interface{}{
				{294, 102, 2, 1, 0.1, 0.2},
				{294, 102, 3, 1, 0.3, 0.4},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	spec := model.ExtractionJobSpec{
		Kind:       model.KindDraws,
		LocationID: 102,
		GBDRoundID: 5,
		OutputPath: path,
	}

	require.NoError(t, Run(context.Background(), "", spec, src))

	// Exactly one retrieval call, carrying the fixed constants plus the
	// requested location and round.
	assert.Equal(t, 1, src.calls)
	require.NotNil(t, src.drawsFilter)
	assert.Equal(t, 294, src.drawsFilter.CauseID)
	assert.Equal(t, []int{102}, src.drawsFilter.LocationIDs)
	assert.Equal(t, []int{1}, src.drawsFilter.MeasureIDs)
	assert.Equal(t, "best", src.drawsFilter.Status)
	assert.Equal(t, "codcorrect", src.drawsFilter.Source)
	assert.Equal(t, 5, src.drawsFilter.GBDRoundID)
	assert.Equal(t, model.StandardAgeGroupIDs(), src.drawsFilter.AgeGroupIDs)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	assert.Len(t, lines, 3, "CSV row count must equal the retrieval result's row count")
}

func TestRunPopulationEndToEnd(t *testing.T) {
	src := &fakeRetriever{
		table: model.ResultTable{
			Columns: []string{"age_group_id", "year_id", "location_id", "sex_id", "pop_scaled"},
			Rows: [][]interface{}{
				{2, 1990, 161, 1, 51234.5},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "pop.csv")
	spec := model.ExtractionJobSpec{
		Kind:       model.KindPopulation,
		LocationID: 161,
		OutputPath: path,
	}

	require.NoError(t, Run(context.Background(), "", spec, src))

	require.NotNil(t, src.popFilter)
	assert.Equal(t, 161, src.popFilter.LocationID)
	assert.Equal(t, model.PopulationYearIDs, src.popFilter.YearIDs)
	assert.Equal(t, model.AllSexIDs, src.popFilter.SexIDs)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), "\n"))
}

func TestRunEmptyResultWritesHeaderOnlyFile(t *testing.T) {
	src := &fakeRetriever{
		table: model.ResultTable{
			Columns: []string{"age_group_id", "year_id", "location_id", "sex_id", "pop_scaled"},
		},
	}
	path := filepath.Join(t.TempDir(), "empty.csv")
	spec := model.ExtractionJobSpec{
		Kind:       model.KindPopulation,
		LocationID: 999999,
		OutputPath: path,
	}

	require.NoError(t, Run(context.Background(), "", spec, src))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "age_group_id,year_id,location_id,sex_id,pop_scaled\n", string(content))
}

func TestRunSummarizeCollapsesDraws(t *testing.T) {
	src := &fakeRetriever{
		table: model.ResultTable{
			Columns: []string{"age_group_id", "draw_0", "draw_1", "draw_2", "draw_3"},
			Rows: [][]interface{}{
				{2, 1.0, 2.0, 3.0, 4.0},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "summary.csv")
	spec := model.ExtractionJobSpec{
		Kind:       model.KindDraws,
		LocationID: 102,
		GBDRoundID: 5,
		Summarize:  true,
		OutputPath: path,
	}

	require.NoError(t, Run(context.Background(), "", spec, src))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "age_group_id,mean,lower,upper", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2,2.5,"))
}

func TestRunRemoteFailurePropagates(t *testing.T) {
	src := &fakeRetriever{err: fmt.Errorf("service unreachable")}
	spec := model.ExtractionJobSpec{
		Kind:       model.KindDraws,
		LocationID: 102,
		GBDRoundID: 5,
		OutputPath: filepath.Join(t.TempDir(), "never.csv"),
	}

	err := Run(context.Background(), "", spec, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote retrieval failed")

	_, statErr := os.Stat(spec.OutputPath)
	assert.True(t, os.IsNotExist(statErr), "no output file on retrieval failure")
}

func TestRunUnknownKindFails(t *testing.T) {
	spec := model.ExtractionJobSpec{Kind: "incidence", LocationID: 102}
	err := Run(context.Background(), "", spec, &fakeRetriever{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extraction kind")
}
