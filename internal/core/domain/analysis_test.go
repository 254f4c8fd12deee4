package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatePeriod(t *testing.T) {
	p := DatePeriod(
		time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC), p.End)
	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
}

func TestAnalysis_MissingNames(t *testing.T) {
	rows := []Row{
		{EmployeeID: "1", FirstName: "Ada"},
		{EmployeeID: "2", LastName: "Turing"},
		{EmployeeID: "3"},
	}

	assert.Equal(t, 1, Analysis{HasEmployees: true, Rows: rows}.MissingNames())
	assert.Zero(t, Analysis{Rows: rows}.MissingNames())
}
