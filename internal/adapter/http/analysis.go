package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"payroll-analyzer/internal/adapter/pipefile"
	"payroll-analyzer/internal/adapter/report"
	"payroll-analyzer/internal/core/domain"
	"payroll-analyzer/internal/core/port"
)

type rowResponse struct {
	StoreID         string  `json:"store_id"`
	StoreNumber     string  `json:"store_number,omitempty"`
	StoreName       string  `json:"store_name,omitempty"`
	EmployeeID      string  `json:"employee_id"`
	FirstName       string  `json:"first_name,omitempty"`
	LastName        string  `json:"last_name,omitempty"`
	HoursWorked     float64 `json:"hours_worked"`
	TotalStoreHours float64 `json:"total_store_hours"`
	HoursProportion float64 `json:"hours_proportion"`
	HoursPercentage float64 `json:"hours_percentage"`
}

type analysisResponse struct {
	ID           string        `json:"id"`
	PeriodStart  time.Time     `json:"period_start"`
	PeriodEnd    time.Time     `json:"period_end"`
	MissingNames int           `json:"missing_names"`
	Rows         []rowResponse `json:"rows"`
}

func newAnalysisResponse(a *domain.Analysis) analysisResponse {
	resp := analysisResponse{
		ID:           a.ID.String(),
		PeriodStart:  a.Period.Start,
		PeriodEnd:    a.Period.End,
		MissingNames: a.MissingNames(),
		Rows:         make([]rowResponse, len(a.Rows)),
	}
	for i, r := range a.Rows {
		resp.Rows[i] = rowResponse(r)
	}
	return resp
}

// handleAnalyze runs an analysis over the uploaded files and returns the
// rows as JSON. Missing files, bad dates and unknown columns result in
// HTTP 400. A period without any worked hours results in HTTP 422.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	a, ok := h.analyze(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(newAnalysisResponse(a)); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleAnalyzeReport runs an analysis like handleAnalyze but answers with
// the CSV report as a download.
func (h *Handler) handleAnalyzeReport(w http.ResponseWriter, r *http.Request) {
	a, ok := h.analyze(w, r)
	if !ok {
		return
	}
	h.writeReport(w, a)
}

// handleArchivedReport returns the CSV report of an archived analysis.
// Unknown ids, malformed ids and a disabled archive all result in HTTP 404.
func (h *Handler) handleArchivedReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	a, err := h.svc.GetAnalysis(r.Context(), id)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			h.logger.Error("get analysis error", slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	h.writeReport(w, a)
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) (*domain.Analysis, bool) {
	in, period, err := h.parseAnalysisRequest(w, r)
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}
	a, err := h.svc.Analyze(r.Context(), in, period)
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}
	return a, true
}

// writeReport renders into a buffer first so a failure can still produce
// a proper error status.
func (h *Handler) writeReport(w http.ResponseWriter, a *domain.Analysis) {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, a); err != nil {
		h.logger.Error("render report error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName+`"`)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, pipefile.ErrMissingColumn):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, errTooLarge):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, port.ErrNoResults):
		http.Error(w, "No results for the selected period.", http.StatusUnprocessableEntity)
	default:
		h.logger.Error("analysis error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
