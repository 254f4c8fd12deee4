// Package report renders analyses as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"payroll-analyzer/internal/core/domain"
)

// FileName is the suggested download name for a report.
const FileName = "payroll_analysis.csv"

// Columns returns the report header for a. Store and name columns only
// appear when the matching table took part in the analysis.
func Columns(a *domain.Analysis) []string {
	cols := []string{"Store_ID"}
	if a.HasStores {
		cols = append(cols, "Store_Number", "Store_Name")
	}
	cols = append(cols, "Employee_ID")
	if a.HasEmployees {
		cols = append(cols, "First_Name", "Last_Name")
	}
	return append(cols, "Hours_Worked", "Total_Store_Hours", "Hours_Proportion", "Hours_Percentage")
}

// WriteCSV writes a's rows to w with a header line.
func WriteCSV(w io.Writer, a *domain.Analysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns(a)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range a.Rows {
		rec := []string{r.StoreID}
		if a.HasStores {
			rec = append(rec, r.StoreNumber, r.StoreName)
		}
		rec = append(rec, r.EmployeeID)
		if a.HasEmployees {
			rec = append(rec, r.FirstName, r.LastName)
		}
		rec = append(rec,
			formatFloat(r.HoursWorked),
			formatFloat(r.TotalStoreHours),
			formatFloat(r.HoursProportion),
			formatFloat(r.HoursPercentage),
		)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
