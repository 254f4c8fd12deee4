package pipefile

import (
	"io"
	"strings"
	"time"

	"payroll-analyzer/internal/core/domain"
)

// timeLayouts lists the timestamp formats seen in clock exports, most
// specific first.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02",
	"1/2/2006",
}

// ParseTime parses a clock timestamp in local wall time. Timestamps that
// carry their own offset keep their instant and are converted to local
// time. ok is false for empty or unrecognised values.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.In(time.Local), true
		}
	}
	return time.Time{}, false
}

// ReadTimeEntries loads the employee time clock file. Entries with
// unparseable timestamps are returned with Valid set to false.
func ReadTimeEntries(r io.Reader) ([]domain.TimeEntry, error) {
	t, err := Read(r)
	if err != nil {
		return nil, err
	}
	idx, err := t.Require("Store_ID", "Employee_ID", "Start", "End")
	if err != nil {
		return nil, err
	}
	entries := make([]domain.TimeEntry, 0, len(t.Rows))
	for _, row := range t.Rows {
		start, okStart := ParseTime(row[idx[2]])
		end, okEnd := ParseTime(row[idx[3]])
		entries = append(entries, domain.TimeEntry{
			StoreID:    row[idx[0]],
			EmployeeID: row[idx[1]],
			Start:      start,
			End:        end,
			Valid:      okStart && okEnd,
		})
	}
	return entries, nil
}

// ReadEmployees loads the employee file.
func ReadEmployees(r io.Reader) ([]domain.Employee, error) {
	t, err := Read(r)
	if err != nil {
		return nil, err
	}
	idx, err := t.Require("Employee_ID", "First_Name", "Last_Name", "Store_ID")
	if err != nil {
		return nil, err
	}
	employees := make([]domain.Employee, 0, len(t.Rows))
	for _, row := range t.Rows {
		employees = append(employees, domain.Employee{
			EmployeeID: row[idx[0]],
			FirstName:  row[idx[1]],
			LastName:   row[idx[2]],
			StoreID:    row[idx[3]],
		})
	}
	return employees, nil
}

// ReadStores loads the store file.
func ReadStores(r io.Reader) ([]domain.Store, error) {
	t, err := Read(r)
	if err != nil {
		return nil, err
	}
	idx, err := t.Require("Store_ID", "Store_Number", "Store_Name")
	if err != nil {
		return nil, err
	}
	stores := make([]domain.Store, 0, len(t.Rows))
	for _, row := range t.Rows {
		stores = append(stores, domain.Store{
			StoreID:     row[idx[0]],
			StoreNumber: row[idx[1]],
			StoreName:   row[idx[2]],
		})
	}
	return stores, nil
}
