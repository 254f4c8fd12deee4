package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"payroll-analyzer/internal/core/domain"
)

// ErrNotFound is returned when an archived analysis does not exist.
var ErrNotFound = errors.New("analysis not found")

// AnalysisRepository archives analyses. It is an outbound port;
// implementations must be safe for concurrent use.
type AnalysisRepository interface {
	// SaveAnalysis stores the analysis and all of its rows atomically.
	SaveAnalysis(ctx context.Context, a *domain.Analysis) error
	// GetAnalysis loads an analysis with its rows in report order.
	GetAnalysis(ctx context.Context, id uuid.UUID) (*domain.Analysis, error)
}
