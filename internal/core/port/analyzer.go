package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"payroll-analyzer/internal/core/domain"
)

// ErrNoResults is returned when no time entry falls inside the period.
var ErrNoResults = errors.New("no results for the selected period")

// AnalyzerUseCase defines the business operations of the payroll analyzer.
// This interface is the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type AnalyzerUseCase interface {
	// Analyze computes each employee's share of store hours for the
	// period. A nil period selects the most recent completed pay period.
	// ErrNoResults is returned when nothing was worked in the period.
	Analyze(ctx context.Context, in AnalysisInput, period *domain.Period) (*domain.Analysis, error)

	// GetAnalysis returns a previously archived analysis. ErrNotFound is
	// returned for unknown ids and when no archive is configured.
	GetAnalysis(ctx context.Context, id uuid.UUID) (*domain.Analysis, error)
}

// AnalysisInput carries the parsed data files. Employees and Stores are
// optional; nil means the table was not supplied.
type AnalysisInput struct {
	TimeEntries []domain.TimeEntry
	Employees   []domain.Employee
	Stores      []domain.Store
}
