// Package sample generates demo input files for the analyzer.
package sample

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File names written by WriteDir.
const (
	TimeClockFile = "Employee_Time_Clock.txt"
	EmployeeFile  = "Employee.txt"
	StoreFile     = "Store.txt"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	firstNames = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Ken", "Margaret", "Dennis"}
	lastNames  = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Thompson", "Hamilton", "Ritchie"}
	storeNames = []string{"Downtown", "Uptown", "Harbor", "Airport", "Mall"}
)

// Files holds generated file contents keyed by file name.
type Files map[string]string

// Generate builds pipe-delimited stores, employees and shifts covering the
// two weeks that end on the Sunday before reference. The same seed always
// yields the same files.
func Generate(seed int64, reference time.Time, storeCount, employeesPerStore int) Files {
	r := rand.New(rand.NewSource(seed))

	var storesTxt, employeesTxt, clockTxt strings.Builder
	storesTxt.WriteString("Store_ID|Store_Number|Store_Name\n")
	employeesTxt.WriteString("Employee_ID|First_Name|Last_Name|Store_ID\n")
	clockTxt.WriteString("Store_ID|Employee_ID|Start|End\n")

	daysSinceSunday := int(reference.Weekday())
	if daysSinceSunday == 0 {
		daysSinceSunday = 7
	}
	y, m, d := reference.AddDate(0, 0, -daysSinceSunday-13).Date()
	periodStart := time.Date(y, m, d, 0, 0, 0, 0, reference.Location())

	for s := 1; s <= storeCount; s++ {
		fmt.Fprintf(&storesTxt, "%d|%d|%s\n", s, 5000+s, storeNames[(s-1)%len(storeNames)])

		for e := 1; e <= employeesPerStore; e++ {
			empID := s*100 + e
			fmt.Fprintf(&employeesTxt, "%d|%s|%s|%d\n",
				empID, firstNames[r.Intn(len(firstNames))], lastNames[r.Intn(len(lastNames))], s)

			for day := 0; day < 14; day++ {
				if r.Intn(3) == 0 {
					continue
				}
				start := periodStart.AddDate(0, 0, day).Add(time.Duration(6+r.Intn(10)) * time.Hour)
				end := start.Add(time.Duration(3+r.Intn(6))*time.Hour + time.Duration(r.Intn(4))*15*time.Minute)
				fmt.Fprintf(&clockTxt, "%d|%d|%s|%s\n", s, empID, start.Format(timeLayout), end.Format(timeLayout))
			}
		}
	}

	return Files{
		TimeClockFile: clockTxt.String(),
		EmployeeFile:  employeesTxt.String(),
		StoreFile:     storesTxt.String(),
	}
}

// WriteDir writes the files into dir, creating it when needed.
func WriteDir(dir string, files Files) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
