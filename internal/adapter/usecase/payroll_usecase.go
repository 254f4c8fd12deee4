package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"payroll-analyzer/internal/core/domain"
	"payroll-analyzer/internal/core/port"
)

// PayrollUseCase computes how a store's worked hours split between its
// employees. It implements port.AnalyzerUseCase.
type PayrollUseCase struct {
	repo   port.AnalysisRepository
	logger *slog.Logger

	// now is the clock used to pick the default pay period.
	now func() time.Time
}

// NewPayrollUseCase creates the analyzer. repo may be nil, in which case
// analyses are not archived.
func NewPayrollUseCase(repo port.AnalysisRepository, logger *slog.Logger) *PayrollUseCase {
	return &PayrollUseCase{repo: repo, logger: logger, now: time.Now}
}

type employeeKey struct {
	storeID    string
	employeeID string
}

// Analyze filters time entries to the period, sums hours per employee and
// store, and attaches employee and store details when supplied. Rows are
// ordered by store and then by hours worked, highest first.
func (u *PayrollUseCase) Analyze(ctx context.Context, in port.AnalysisInput, period *domain.Period) (*domain.Analysis, error) {
	p := PayPeriodFor(u.now())
	if period != nil {
		p = *period
	}

	hours := make(map[employeeKey]float64)
	storeTotals := make(map[string]float64)
	var order []employeeKey
	for _, e := range in.TimeEntries {
		if !e.Valid || !p.Contains(e.Start) {
			continue
		}
		h := HoursWorked(e.Start, e.End)
		if h <= 0 {
			continue
		}
		key := employeeKey{storeID: e.StoreID, employeeID: e.EmployeeID}
		if _, seen := hours[key]; !seen {
			order = append(order, key)
		}
		hours[key] += h
		storeTotals[e.StoreID] += h
	}
	if len(order) == 0 {
		return nil, port.ErrNoResults
	}

	employees := indexEmployees(in.Employees)
	stores := indexStores(in.Stores)

	rows := make([]domain.Row, 0, len(order))
	for _, key := range order {
		total := storeTotals[key.storeID]
		proportion := hours[key] / total
		row := domain.Row{
			StoreID:         key.storeID,
			EmployeeID:      key.employeeID,
			HoursWorked:     hours[key],
			TotalStoreHours: total,
			HoursProportion: proportion,
			HoursPercentage: proportion * 100,
		}
		if emp, ok := employees[key]; ok {
			row.FirstName = emp.FirstName
			row.LastName = emp.LastName
		}
		if st, ok := stores[key.storeID]; ok {
			row.StoreNumber = st.StoreNumber
			row.StoreName = st.StoreName
		}
		rows = append(rows, row)
	}
	slices.SortStableFunc(rows, compareRows)

	a := &domain.Analysis{
		ID:           uuid.New(),
		Period:       p,
		CreatedAt:    u.now().UTC(),
		HasEmployees: in.Employees != nil,
		HasStores:    in.Stores != nil,
		Rows:         rows,
	}

	if u.repo != nil {
		if err := u.repo.SaveAnalysis(ctx, a); err != nil {
			return nil, err
		}
	}

	u.logger.Info("analysis complete",
		slog.String("id", a.ID.String()),
		slog.Time("period_start", p.Start),
		slog.Time("period_end", p.End),
		slog.Int("rows", len(rows)),
	)
	return a, nil
}

// GetAnalysis returns an archived analysis.
func (u *PayrollUseCase) GetAnalysis(ctx context.Context, id uuid.UUID) (*domain.Analysis, error) {
	if u.repo == nil {
		return nil, port.ErrNotFound
	}
	return u.repo.GetAnalysis(ctx, id)
}

// indexEmployees keeps the first record per employee and store.
func indexEmployees(list []domain.Employee) map[employeeKey]domain.Employee {
	m := make(map[employeeKey]domain.Employee, len(list))
	for _, e := range list {
		key := employeeKey{storeID: e.StoreID, employeeID: e.EmployeeID}
		if _, ok := m[key]; !ok {
			m[key] = e
		}
	}
	return m
}

// indexStores keeps the first record per store.
func indexStores(list []domain.Store) map[string]domain.Store {
	m := make(map[string]domain.Store, len(list))
	for _, s := range list {
		if _, ok := m[s.StoreID]; !ok {
			m[s.StoreID] = s
		}
	}
	return m
}

func compareRows(a, b domain.Row) int {
	if c := compareIDs(a.StoreID, b.StoreID); c != 0 {
		return c
	}
	if c := cmp.Compare(b.HoursWorked, a.HoursWorked); c != 0 {
		return c
	}
	return compareIDs(a.EmployeeID, b.EmployeeID)
}

// compareIDs orders numeric ids by value ahead of all other ids, which
// compare as text.
func compareIDs(a, b string) int {
	ai, errA := strconv.ParseInt(a, 10, 64)
	bi, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(ai, bi)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return cmp.Compare(a, b)
}
