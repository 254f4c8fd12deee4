package domain

import "time"

// TimeEntry is a single clock-in/clock-out record. Valid is false when
// either timestamp could not be parsed; such entries never count towards
// worked hours.
type TimeEntry struct {
	StoreID    string
	EmployeeID string
	Start      time.Time
	End        time.Time
	Valid      bool
}

// Employee identifies a person working at a store. The same person may
// appear once per store.
type Employee struct {
	EmployeeID string
	StoreID    string
	FirstName  string
	LastName   string
}

// Store describes a location.
type Store struct {
	StoreID     string
	StoreNumber string
	StoreName   string
}
