package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-analyzer/internal/sample"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	ref := time.Date(2024, 1, 17, 10, 0, 0, 0, time.Local)
	require.NoError(t, sample.WriteDir(dir, sample.Generate(3, ref, 2, 2)))

	out, err := runRoot(t, "analyze",
		"--time", filepath.Join(dir, sample.TimeClockFile),
		"--employee", filepath.Join(dir, sample.EmployeeFile),
		"--store", filepath.Join(dir, sample.StoreFile),
		"--start", "2024-01-01", "--end", "2024-01-14",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t,
		"Store_ID,Store_Number,Store_Name,Employee_ID,First_Name,Last_Name,Hours_Worked,Total_Store_Hours,Hours_Proportion,Hours_Percentage",
		lines[0])
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "1,5001,Downtown,"))
}

func TestAnalyzeCommand_WritesFile(t *testing.T) {
	dir := t.TempDir()
	ref := time.Date(2024, 1, 17, 10, 0, 0, 0, time.Local)
	require.NoError(t, sample.WriteDir(dir, sample.Generate(3, ref, 1, 1)))
	reportPath := filepath.Join(dir, "report.csv")

	out, err := runRoot(t, "analyze",
		"--time", filepath.Join(dir, sample.TimeClockFile),
		"--start", "2024-01-01", "--end", "2024-01-14",
		"--out", reportPath,
	)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Store_ID,Employee_ID,Hours_Worked,"))
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	ref := time.Date(2024, 1, 17, 10, 0, 0, 0, time.Local)
	require.NoError(t, sample.WriteDir(dir, sample.Generate(3, ref, 1, 1)))
	timeFile := filepath.Join(dir, sample.TimeClockFile)

	_, err := runRoot(t, "analyze")
	assert.Error(t, err, "--time is required")

	_, err = runRoot(t, "analyze", "--time", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = runRoot(t, "analyze", "--time", timeFile, "--start", "2024-01-14", "--end", "2024-01-01")
	assert.ErrorContains(t, err, "before")

	_, err = runRoot(t, "analyze", "--time", timeFile, "--start", "2020-01-01", "--end", "2020-01-14")
	assert.ErrorContains(t, err, "no results")
}

func TestServeCommand_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "abc")

	_, err := runRoot(t, "serve")

	assert.ErrorContains(t, err, "abc")
}

func TestServeCommand_OccupiedPortFailsFast(t *testing.T) {
	port := occupyPort(t)
	t.Setenv("PORT", port)
	t.Setenv("PSQL_ADDRESS", "")
	t.Setenv("ENTRYPOINT_RUNNER", "")

	_, err := runRoot(t, "serve")

	assert.ErrorContains(t, err, "bind listener")
}
