package sample

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-analyzer/internal/adapter/pipefile"
	"payroll-analyzer/internal/adapter/usecase"
	"payroll-analyzer/internal/core/port"
)

var reference = time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)

func TestGenerate_Deterministic(t *testing.T) {
	assert.Equal(t, Generate(42, reference, 2, 3), Generate(42, reference, 2, 3))
	assert.NotEqual(t, Generate(42, reference, 2, 3), Generate(7, reference, 2, 3))
}

func TestGenerate_AnalyzesWithinPayPeriod(t *testing.T) {
	files := Generate(1, reference, 3, 4)

	entries, err := pipefile.ReadTimeEntries(strings.NewReader(files[TimeClockFile]))
	require.NoError(t, err)
	employees, err := pipefile.ReadEmployees(strings.NewReader(files[EmployeeFile]))
	require.NoError(t, err)
	stores, err := pipefile.ReadStores(strings.NewReader(files[StoreFile]))
	require.NoError(t, err)

	assert.Len(t, employees, 12)
	assert.Len(t, stores, 3)

	period := usecase.PayPeriodFor(reference)
	for _, e := range entries {
		require.True(t, e.Valid)
		assert.True(t, period.Contains(e.Start), "shift %v outside %v", e.Start, period)
	}

	u := usecase.NewPayrollUseCase(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	a, err := u.Analyze(context.Background(), port.AnalysisInput{
		TimeEntries: entries, Employees: employees, Stores: stores,
	}, &period)
	require.NoError(t, err)
	assert.Zero(t, a.MissingNames())
	for _, row := range a.Rows {
		assert.NotEmpty(t, row.StoreName)
	}
}

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	require.NoError(t, WriteDir(dir, Generate(1, reference, 1, 1)))

	for _, name := range []string{TimeClockFile, EmployeeFile, StoreFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
