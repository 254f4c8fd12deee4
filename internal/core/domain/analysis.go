package domain

import (
	"time"

	"github.com/google/uuid"
)

// Period is a closed time interval. Both ends are inclusive.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// DatePeriod covers whole days from the start date through the end date.
func DatePeriod(startDate, endDate time.Time) Period {
	sy, sm, sd := startDate.Date()
	ey, em, ed := endDate.Date()
	return Period{
		Start: time.Date(sy, sm, sd, 0, 0, 0, 0, startDate.Location()),
		End:   time.Date(ey, em, ed, 23, 59, 59, 0, endDate.Location()),
	}
}

// Row is the share of a store's worked hours attributed to one employee.
// Name and store columns stay empty when no matching record was supplied.
type Row struct {
	StoreID         string
	StoreNumber     string
	StoreName       string
	EmployeeID      string
	FirstName       string
	LastName        string
	HoursWorked     float64
	TotalStoreHours float64
	HoursProportion float64
	HoursPercentage float64
}

// Analysis is the outcome of one run over a pay period. HasEmployees and
// HasStores record which optional tables took part, which decides the
// report columns.
type Analysis struct {
	ID           uuid.UUID
	Period       Period
	CreatedAt    time.Time
	HasEmployees bool
	HasStores    bool
	Rows         []Row
}

// MissingNames counts rows without any employee name. It is zero when no
// employee table was supplied.
func (a Analysis) MissingNames() int {
	if !a.HasEmployees {
		return 0
	}
	var n int
	for _, r := range a.Rows {
		if r.FirstName == "" && r.LastName == "" {
			n++
		}
	}
	return n
}
