package store

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbd-extract/internal/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
}

func TestSaveAndGetExtraction(t *testing.T) {
	initTestDB(t)

	spec := model.ExtractionJobSpec{
		Kind:       model.KindDraws,
		LocationID: 102,
		GBDRoundID: 5,
		OutputFile: "deaths.csv",
	}
	require.NoError(t, SaveExtraction("job-1", spec))

	job, err := GetExtraction("job-1")
	require.NoError(t, err)

	assert.Equal(t, "job-1", job["id"])
	assert.Equal(t, model.KindDraws, job["kind"])
	assert.Equal(t, "pending", job["status"])

	stored, ok := job["spec"].(model.ExtractionJobSpec)
	require.True(t, ok)
	assert.Equal(t, 102, stored.LocationID)
	assert.Equal(t, 5, stored.GBDRoundID)
}

func TestUpdateExtractionStatus(t *testing.T) {
	initTestDB(t)

	spec := model.ExtractionJobSpec{Kind: model.KindPopulation, LocationID: 161, OutputFile: "pop.csv"}
	require.NoError(t, SaveExtraction("job-2", spec))

	require.NoError(t, UpdateExtractionStatus("job-2", "completed"))

	job, err := GetExtraction("job-2")
	require.NoError(t, err)
	assert.Equal(t, "completed", job["status"])
}

func TestListExtractions(t *testing.T) {
	initTestDB(t)

	for i := 0; i < 3; i++ {
		spec := model.ExtractionJobSpec{Kind: model.KindPopulation, LocationID: 100 + i, OutputFile: "pop.csv"}
		require.NoError(t, SaveExtraction(fmt.Sprintf("job-%d", i), spec))
	}

	jobs, err := ListExtractions()
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestSaveAndGetExtractionErrors(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveExtractionError("job-3", fmt.Errorf("remote retrieval failed")))
	require.NoError(t, SaveExtractionError("job-3", nil)) // nil errors are ignored

	errs, err := GetExtractionErrors("job-3")
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "remote retrieval failed", errs[0]["message"])
}

func TestSaveAndGetExtractionLogs(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveExtractionLog("job-4", "retrieval", "info", "Fetching cause draws", map[string]interface{}{
		"location_id": 102,
	}))

	logs, err := GetExtractionLogs("job-4", 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "retrieval", logs[0]["stage"])
	assert.Equal(t, "Fetching cause draws", logs[0]["message"])

	details, ok := logs[0]["details"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 102, details["location_id"])
}

func TestGetExtractionLogsCorruptDetails(t *testing.T) {
	initTestDB(t)

	_, err := db.Exec(`INSERT INTO extraction_logs (extraction_id, stage, level, message, details, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		"job-6", "export", "info", "Export completed", "{not valid json", "2026-01-01 00:00:00")
	require.NoError(t, err)

	logs, err := GetExtractionLogs("job-6", 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	details, ok := logs[0]["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "{not valid json", details["raw"])
}

func TestSaveAndGetOutputFiles(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveOutputFile("job-5", "deaths.csv", "/outputs/job-5/deaths.csv", 240))

	files, err := GetOutputFiles("job-5")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "deaths.csv", files[0]["file_name"])
	assert.Equal(t, 240, files[0]["record_count"])
}
