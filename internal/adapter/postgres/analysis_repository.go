package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"payroll-analyzer/internal/core/domain"
	"payroll-analyzer/internal/core/port"
)

var rowColumns = []string{
	"analysis_id",
	"position",
	"store_id",
	"store_number",
	"store_name",
	"employee_id",
	"first_name",
	"last_name",
	"hours_worked",
	"total_store_hours",
	"hours_proportion",
	"hours_percentage",
}

// AnalysisRepository implements port.AnalysisRepository using pgxpool for PostgreSQL.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

// NewAnalysisRepository returns a new repository instance.
func NewAnalysisRepository(pool *pgxpool.Pool) *AnalysisRepository {
	return &AnalysisRepository{pool: pool}
}

// SaveAnalysis inserts the analysis header and copies its rows in one
// transaction. Row order is kept in the position column.
func (r *AnalysisRepository) SaveAnalysis(ctx context.Context, a *domain.Analysis) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
        INSERT INTO analyses (id, period_start, period_end, has_employees, has_stores, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Period.Start, a.Period.End, a.HasEmployees, a.HasStores, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"analysis_rows"}, rowColumns,
		pgx.CopyFromSlice(len(a.Rows), func(i int) ([]any, error) {
			row := a.Rows[i]
			return []any{
				a.ID, i,
				row.StoreID, row.StoreNumber, row.StoreName,
				row.EmployeeID, row.FirstName, row.LastName,
				row.HoursWorked, row.TotalStoreHours, row.HoursProportion, row.HoursPercentage,
			}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy rows: %w", err)
	}

	return tx.Commit(ctx)
}

// GetAnalysis loads an analysis and its rows. port.ErrNotFound is returned
// for unknown ids.
func (r *AnalysisRepository) GetAnalysis(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
	a := domain.Analysis{ID: id}
	err := r.pool.QueryRow(ctx, `
        SELECT period_start, period_end, has_employees, has_stores, created_at
        FROM analyses
        WHERE id = $1`, id).
		Scan(&a.Period.Start, &a.Period.End, &a.HasEmployees, &a.HasStores, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select analysis: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
        SELECT store_id, store_number, store_name, employee_id, first_name, last_name,
               hours_worked, total_store_hours, hours_proportion, hours_percentage
        FROM analysis_rows
        WHERE analysis_id = $1
        ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("select rows: %w", err)
	}
	a.Rows, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Row, error) {
		var dr domain.Row
		err := row.Scan(
			&dr.StoreID,
			&dr.StoreNumber,
			&dr.StoreName,
			&dr.EmployeeID,
			&dr.FirstName,
			&dr.LastName,
			&dr.HoursWorked,
			&dr.TotalStoreHours,
			&dr.HoursProportion,
			&dr.HoursPercentage,
		)
		return dr, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan rows: %w", err)
	}
	return &a, nil
}
