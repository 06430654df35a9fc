package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gbd-extract/internal/extract"
	"gbd-extract/internal/model"
	"gbd-extract/internal/store"
	"gbd-extract/pkg/utils"

	"github.com/google/uuid"
)

// ExtractionHandler serves the extraction job API. The retrieval collaborator
// is injected so handlers never touch a global client.
type ExtractionHandler struct {
	Source  extract.Retriever
	Outputs *utils.OutputManager
}

// CreateExtraction submits a new extraction job
// @Summary Create a new extraction
// @Description Submit a draws or population extraction job; it runs asynchronously
// @Tags extractions
// @Accept json
// @Produce json
// @Param extraction body model.ExtractionJobSpec true "Extraction job spec"
// @Success 200 {object} map[string]interface{} "Extraction submitted"
// @Failure 400 {object} map[string]interface{} "Invalid job spec"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /extractions [post]
func (h *ExtractionHandler) CreateExtraction(w http.ResponseWriter, r *http.Request) {
	var spec model.ExtractionJobSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if err := extract.ValidateJobSpec(spec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	jobID := uuid.New().String()

	outputPath, err := h.Outputs.GetOutputFilePath(jobID, spec.OutputFile)
	if err != nil {
		http.Error(w, "Failed to prepare output directory", http.StatusInternalServerError)
		return
	}
	spec.OutputPath = outputPath

	if err := store.SaveExtraction(jobID, spec); err != nil {
		http.Error(w, "Failed to save extraction", http.StatusInternalServerError)
		return
	}

	go func() {
		if err := extract.Run(context.Background(), jobID, spec, h.Source); err != nil {
			fmt.Printf("❌ Extraction %s failed: %v\n", jobID, err)
		}
	}()

	resp := map[string]interface{}{
		"message":     "Extraction submitted successfully!",
		"jobID":       jobID,
		"status":      "pending",
		"downloadURL": h.Outputs.GetDownloadURL(jobID, spec.OutputFile),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListExtractions retrieves all extraction jobs
// @Summary List all extractions
// @Description Get a list of all extraction jobs with their current status
// @Tags extractions
// @Produce json
// @Success 200 {array} map[string]interface{} "List of extractions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /extractions [get]
func (h *ExtractionHandler) ListExtractions(w http.ResponseWriter, r *http.Request) {
	jobs, err := store.ListExtractions()
	if err != nil {
		http.Error(w, "Failed to fetch extractions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(jobs)
}

// GetExtraction retrieves a specific extraction job
// @Summary Get extraction
// @Description Retrieve details of a specific extraction job
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID"
// @Success 200 {object} map[string]interface{} "Extraction details"
// @Failure 404 {object} map[string]interface{} "Extraction not found"
// @Router /extractions/{id} [get]
func (h *ExtractionHandler) GetExtraction(w http.ResponseWriter, r *http.Request) {
	jobID, ok := extractionID(w, r, "")
	if !ok {
		return
	}

	job, err := store.GetExtraction(jobID)
	if err != nil {
		http.Error(w, "Extraction not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

// GetExtractionErrors retrieves errors for an extraction job
// @Summary Get extraction errors
// @Description Retrieve all errors recorded during an extraction run
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID"
// @Success 200 {object} map[string]interface{} "Extraction errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /extractions/{id}/errors [get]
func (h *ExtractionHandler) GetExtractionErrors(w http.ResponseWriter, r *http.Request) {
	jobID, ok := extractionID(w, r, "/errors")
	if !ok {
		return
	}

	errs, err := store.GetExtractionErrors(jobID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"job_id": jobID,
		"errors": errs,
		"count":  len(errs),
	})
}

// GetExtractionLogs retrieves stage logs for an extraction job
// @Summary Get extraction logs
// @Description Retrieve stage log entries recorded during an extraction run
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} map[string]interface{} "Extraction logs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /extractions/{id}/logs [get]
func (h *ExtractionHandler) GetExtractionLogs(w http.ResponseWriter, r *http.Request) {
	jobID, ok := extractionID(w, r, "/logs")
	if !ok {
		return
	}

	limit := 100 // default
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	logs, err := store.GetExtractionLogs(jobID, limit)
	if err != nil {
		http.Error(w, "Failed to retrieve logs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"job_id": jobID,
		"logs":   logs,
		"count":  len(logs),
		"limit":  limit,
	})
}

// GetExtractionFiles retrieves output files for an extraction job
// @Summary Get extraction files
// @Description Retrieve the exported files produced by an extraction run
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID"
// @Success 200 {object} map[string]interface{} "Extraction files"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /extractions/{id}/files [get]
func (h *ExtractionHandler) GetExtractionFiles(w http.ResponseWriter, r *http.Request) {
	jobID, ok := extractionID(w, r, "/files")
	if !ok {
		return
	}

	files, err := store.GetOutputFiles(jobID)
	if err != nil {
		http.Error(w, "Failed to retrieve files", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"job_id": jobID,
		"files":  files,
		"count":  len(files),
	})
}

// DownloadFile serves an exported CSV for download
// @Summary Download file
// @Description Download a specific output file from an extraction job
// @Tags files
// @Produce application/octet-stream
// @Param jobID path string true "Extraction ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{jobID}/{filename} [get]
func (h *ExtractionHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/download/jobID/filename
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 5 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	jobID := pathParts[3]
	fileName := pathParts[4]

	filePath := filepath.Join(h.Outputs.BaseOutputDir, jobID, filepath.Base(fileName))

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/octet-stream")

	http.ServeFile(w, r, filePath)
}

// extractionID pulls the job id out of /api/v1/extractions/{id}<suffix>
// style paths, writing a 400 when the path is malformed.
func extractionID(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	prefix := "/api/v1/extractions/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	jobID := path[len(prefix) : len(path)-len(suffix)]
	if jobID == "" || strings.Contains(jobID, "/") {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return "", false
	}
	return jobID, true
}
