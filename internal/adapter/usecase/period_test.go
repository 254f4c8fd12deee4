package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestHoursWorked(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       float64
	}{
		{name: "day shift", start: at(2024, 1, 2, 9, 0), end: at(2024, 1, 2, 17, 30), want: 8.5},
		{name: "overnight with same-day end", start: at(2024, 1, 2, 22, 0), end: at(2024, 1, 2, 6, 0), want: 8},
		{name: "overnight with next-day end", start: at(2024, 1, 2, 22, 0), end: at(2024, 1, 3, 2, 0), want: 4},
		{name: "capped", start: at(2024, 1, 2, 6, 0), end: at(2024, 1, 3, 2, 0), want: 16},
		{name: "zero length", start: at(2024, 1, 2, 9, 0), end: at(2024, 1, 2, 9, 0), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HoursWorked(tt.start, tt.end), 1e-9)
		})
	}
}

func TestPayPeriodFor(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "midweek",
			ref:       at(2024, 1, 17, 10, 0),
			wantStart: at(2024, 1, 1, 0, 0),
			wantEnd:   time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "monday",
			ref:       at(2024, 1, 15, 0, 30),
			wantStart: at(2024, 1, 1, 0, 0),
			wantEnd:   time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "sunday rolls back a full week",
			ref:       at(2024, 1, 14, 12, 0),
			wantStart: at(2023, 12, 25, 0, 0),
			wantEnd:   time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PayPeriodFor(tt.ref)
			assert.Equal(t, tt.wantStart, p.Start)
			assert.Equal(t, tt.wantEnd, p.End)
			assert.Equal(t, time.Sunday, p.End.Weekday())
			assert.Equal(t, time.Monday, p.Start.Weekday())
		})
	}
}
