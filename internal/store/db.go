package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"gbd-extract/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the tracking tables.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	extractionTable := `
	CREATE TABLE IF NOT EXISTS extractions (
		id TEXT PRIMARY KEY,
		kind TEXT,
		spec TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS extraction_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		extraction_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`
	logTable := `
	CREATE TABLE IF NOT EXISTS extraction_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		extraction_id TEXT,
		stage TEXT,
		level TEXT,
		message TEXT,
		details TEXT,
		created_at DATETIME
	);
	`
	fileTable := `
	CREATE TABLE IF NOT EXISTS output_files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		extraction_id TEXT,
		file_name TEXT,
		file_path TEXT,
		record_count INTEGER,
		created_at DATETIME
	);
	`

	for _, table := range []string{extractionTable, errorTable, logTable, fileTable} {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}

	return nil
}

// SaveExtraction stores a new extraction job.
func SaveExtraction(jobID string, spec model.ExtractionJobSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO extractions (id, kind, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		jobID, spec.Kind, specJSON, "pending", now, now)
	return err
}

// SaveExtractionError records an error for an extraction job.
func SaveExtractionError(jobID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO extraction_errors (extraction_id, error_message, created_at) VALUES (?, ?, ?)`,
		jobID, err.Error(), now)
	return e
}

// ListExtractions returns all extraction jobs with basic info.
func ListExtractions() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, kind, status, created_at, updated_at FROM extractions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []map[string]interface{}
	for rows.Next() {
		var id, kind, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &kind, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, map[string]interface{}{
			"id":        id,
			"kind":      kind,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return jobs, rows.Err()
}

// GetExtraction fetches the full job spec and status.
func GetExtraction(jobID string) (map[string]interface{}, error) {
	var specJSON string
	var kind, status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT kind, spec, status, created_at, updated_at FROM extractions WHERE id = ?`, jobID).
		Scan(&kind, &specJSON, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var spec model.ExtractionJobSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        jobID,
		"kind":      kind,
		"spec":      spec,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// UpdateExtractionStatus updates the job status.
func UpdateExtractionStatus(jobID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE extractions SET status = ?, updated_at = ? WHERE id = ?`, status, now, jobID)
	return err
}

// GetExtractionErrors returns all errors recorded for a job.
func GetExtractionErrors(jobID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM extraction_errors WHERE extraction_id = ? ORDER BY created_at`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errs []map[string]interface{}
	for rows.Next() {
		var message string
		var createdAt time.Time
		if err := rows.Scan(&message, &createdAt); err != nil {
			return nil, err
		}
		errs = append(errs, map[string]interface{}{
			"message":   message,
			"createdAt": createdAt,
		})
	}
	return errs, rows.Err()
}

// SaveExtractionLog records a stage log entry with optional details.
func SaveExtractionLog(jobID, stage, level, message string, details map[string]interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO extraction_logs (extraction_id, stage, level, message, details, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		jobID, stage, level, message, detailsJSON, now)
	return err
}

// GetExtractionLogs returns up to limit log entries for a job.
func GetExtractionLogs(jobID string, limit int) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT stage, level, message, details, created_at FROM extraction_logs WHERE extraction_id = ? ORDER BY created_at LIMIT ?`,
		jobID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []map[string]interface{}
	for rows.Next() {
		var stage, level, message, detailsJSON string
		var createdAt time.Time
		if err := rows.Scan(&stage, &level, &message, &detailsJSON, &createdAt); err != nil {
			return nil, err
		}

		var details map[string]interface{}
		if err := json.Unmarshal([]byte(detailsJSON), &details); err != nil {
			// Keep the corrupt blob visible instead of dropping it.
			details = map[string]interface{}{"raw": detailsJSON}
		}

		logs = append(logs, map[string]interface{}{
			"stage":     stage,
			"level":     level,
			"message":   message,
			"details":   details,
			"createdAt": createdAt,
		})
	}
	return logs, rows.Err()
}

// SaveOutputFile records an exported file for a job.
func SaveOutputFile(jobID, fileName, filePath string, recordCount int) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO output_files (extraction_id, file_name, file_path, record_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		jobID, fileName, filePath, recordCount, now)
	return err
}

// GetOutputFiles returns all exported files for a job.
func GetOutputFiles(jobID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, file_name, file_path, record_count, created_at FROM output_files WHERE extraction_id = ? ORDER BY created_at`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []map[string]interface{}
	for rows.Next() {
		var id, recordCount int
		var fileName, filePath string
		var createdAt time.Time
		if err := rows.Scan(&id, &fileName, &filePath, &recordCount, &createdAt); err != nil {
			return nil, err
		}
		files = append(files, map[string]interface{}{
			"id":           id,
			"file_name":    fileName,
			"file_path":    filePath,
			"record_count": recordCount,
			"createdAt":    createdAt,
		})
	}
	return files, rows.Err()
}
