package httpadapter

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"payroll-analyzer/internal/adapter/pipefile"
	"payroll-analyzer/internal/core/domain"
	"payroll-analyzer/internal/core/port"
)

var (
	// errBadRequest marks client errors detected while reading the request.
	errBadRequest = errors.New("bad request")
	errTooLarge   = errors.New("request body too large")
)

const dateLayout = "2006-01-02"

// parseAnalysisRequest reads the three uploaded files and the optional date
// range from a multipart form. The period is nil when no dates were given.
func (h *Handler) parseAnalysisRequest(w http.ResponseWriter, r *http.Request) (port.AnalysisInput, *domain.Period, error) {
	var in port.AnalysisInput

	if r.ContentLength > h.maxUpload {
		return in, nil, fmt.Errorf("%w: limit is %d bytes", errTooLarge, h.maxUpload)
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return in, nil, fmt.Errorf("%w: limit is %d bytes", errTooLarge, maxErr.Limit)
		}
		return in, nil, fmt.Errorf("%w: invalid multipart form: %v", errBadRequest, err)
	}

	timeFile, err := formFile(r, "time")
	if err != nil {
		return in, nil, err
	}
	defer timeFile.Close()
	employeeFile, err := formFile(r, "employee")
	if err != nil {
		return in, nil, err
	}
	defer employeeFile.Close()
	storeFile, err := formFile(r, "store")
	if err != nil {
		return in, nil, err
	}
	defer storeFile.Close()

	if in.TimeEntries, err = pipefile.ReadTimeEntries(timeFile); err != nil {
		return in, nil, fmt.Errorf("%w: time clock file: %w", errBadRequest, err)
	}
	if in.Employees, err = pipefile.ReadEmployees(employeeFile); err != nil {
		return in, nil, fmt.Errorf("%w: employee file: %w", errBadRequest, err)
	}
	if in.Stores, err = pipefile.ReadStores(storeFile); err != nil {
		return in, nil, fmt.Errorf("%w: store file: %w", errBadRequest, err)
	}

	period, err := parsePeriod(r.FormValue("start_date"), r.FormValue("end_date"))
	if err != nil {
		return in, nil, err
	}
	return in, period, nil
}

func formFile(r *http.Request, field string) (multipart.File, error) {
	f, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, fmt.Errorf("%w: please upload all three files (missing %q)", errBadRequest, field)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", errBadRequest, field, err)
	}
	return f, nil
}

// parsePeriod accepts either both dates or neither.
func parsePeriod(startStr, endStr string) (*domain.Period, error) {
	if startStr == "" && endStr == "" {
		return nil, nil
	}
	if startStr == "" || endStr == "" {
		return nil, fmt.Errorf("%w: start_date and end_date must be given together", errBadRequest)
	}
	start, err := time.ParseInLocation(dateLayout, startStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start_date", errBadRequest)
	}
	end, err := time.ParseInLocation(dateLayout, endStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end_date", errBadRequest)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", errBadRequest)
	}
	p := domain.DatePeriod(start, end)
	return &p, nil
}
