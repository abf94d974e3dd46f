package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/hirescope/internal/analyzer"
	"github.com/hyperjump/hirescope/internal/batch"
	"github.com/hyperjump/hirescope/internal/extract"
	"github.com/hyperjump/hirescope/internal/fileid"
	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/internal/storage"
	"github.com/hyperjump/hirescope/internal/template"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// minATSTextLen is the minimum extracted length for a meaningful ATS run.
const minATSTextLen = 50

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.analyzeTimeout())
	defer cancel()

	name, content, ok := s.readUpload(w, r, "file")
	if !ok {
		return
	}
	jd := r.FormValue("job_description")
	s.logger.Debug("upload request", zap.String("filename", name), zap.Int("bytes", len(content)))

	result, err := s.analyzer.Analyze(ctx, name, content, jd)
	if err != nil {
		s.respondAnalyzeError(w, err)
		return
	}

	if s.store != nil {
		if err := s.store.SaveResult(ctx, result, fileid.ContentHash(content)); err != nil {
			s.logger.Warn("failed to persist result", zap.String("id", result.ID), zap.Error(err))
		}
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.respondError(w, http.StatusNotImplemented, "storage not enabled")
		return
	}
	id := chi.URLParam(r, "id")
	result, err := s.store.GetResult(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "result not found")
		return
	}
	if err != nil {
		s.logger.Error("result lookup failed", zap.String("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleATSSimulate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.analyzeTimeout())
	defer cancel()

	name, content, ok := s.readUpload(w, r, "file")
	if !ok {
		return
	}
	s.logger.Debug("ats simulate request", zap.String("filename", name))

	extracted, err := s.extractor.Extract(ctx, name, content)
	if err != nil {
		s.respondAnalyzeError(w, err)
		return
	}
	if len(strings.TrimSpace(extracted.Text)) < minATSTextLen {
		s.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("extracted text too short for simulation (need %d characters)", minATSTextLen))
		return
	}
	s.respondJSON(w, http.StatusOK, s.simulator.Simulate(extracted.Text))
}

func (s *Server) handleBatchAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.batchTimeout())
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBatchBytes())
	if err := r.ParseMultipartForm(s.maxBatchBytes()); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	headers := r.MultipartForm.File["files"]
	files := make([]batch.File, 0, len(headers))
	for _, fh := range headers {
		content, err := readFileHeader(fh)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read %s", fh.Filename))
			return
		}
		files = append(files, batch.File{Name: fh.Filename, Content: content})
	}
	jd := r.FormValue("job_description")
	s.logger.Debug("batch analyze request", zap.Int("files", len(files)))

	result, err := s.ranker.Analyze(ctx, files, jd)
	if err != nil {
		s.respondAnalyzeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleBatchExport(w http.ResponseWriter, r *http.Request) {
	var result models.BatchResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(result.Entries) == 0 {
		s.respondError(w, http.StatusBadRequest, "no batch entries to export")
		return
	}

	var buf bytes.Buffer
	if err := batch.WriteXLSX(&result, &buf); err != nil {
		s.logger.Error("xlsx export failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="comparison.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleLiveAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.liveTimeout())
	defer cancel()

	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	req := &models.LiveAnalyzeRequest{
		ResumeText:     r.FormValue("resume_text"),
		JobDescription: r.FormValue("job_description"),
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := s.analyzer.LiveAnalyze(ctx, req)
	if err != nil {
		s.respondAnalyzeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateTemplate(w http.ResponseWriter, r *http.Request) {
	var req models.TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var buf bytes.Buffer
	if err := template.Generate(&req, &buf); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="resume_template_%s.docx"`, req.Industry))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"status": "ok"}
	if s.store != nil {
		if count, err := s.store.CountResults(r.Context()); err == nil {
			resp["stored_results"] = count
		}
		diskBytes, err := storage.DiskUsageBytes(
			s.config.Storage.DatabasePath,
			s.config.Storage.TipsIndexPath,
		)
		if err == nil {
			resp["disk_usage_bytes"] = diskBytes
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// readUpload pulls one multipart file out of the request, enforcing the
// configured size limit. It writes the error response itself on failure.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request, field string) (string, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Analysis.MaxUploadBytes)
	file, header, err := r.FormFile(field)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("missing or oversized %q upload", field))
		return "", nil, false
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read upload")
		return "", nil, false
	}
	return header.Filename, content, true
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// maxBatchBytes scales the single-file limit by the batch size cap.
func (s *Server) maxBatchBytes() int64 {
	return s.config.Analysis.MaxUploadBytes * int64(s.config.Batch.MaxFiles)
}

// respondAnalyzeError maps pipeline errors onto HTTP statuses: bad
// input is 400, a document we could not read is 422, a blown deadline
// is 504, everything else is 500.
func (s *Server) respondAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyzer.ErrJobDescriptionTooShort),
		errors.Is(err, extract.ErrUnsupportedType),
		errors.Is(err, batch.ErrNoFiles),
		errors.Is(err, batch.ErrTooManyFiles):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.respondError(w, http.StatusGatewayTimeout, "analysis timed out")
	case errors.Is(err, extract.ErrExtractionFailed), errors.Is(err, extract.ErrNoText):
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.Error("analysis failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, models.ErrorResponse{Error: message})
}
