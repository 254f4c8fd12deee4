package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"payroll-analyzer/internal/adapter/pipefile"
	"payroll-analyzer/internal/adapter/report"
	"payroll-analyzer/internal/adapter/usecase"
	"payroll-analyzer/internal/core/domain"
	"payroll-analyzer/internal/core/port"
)

type analyzeOptions struct {
	timeFile     string
	employeeFile string
	storeFile    string
	startDate    string
	endDate      string
	out          string
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOptions
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze local data files and write the CSV report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, err := bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runAnalyze(cmd, opts, logger)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.timeFile, "time", "", "Employee_Time_Clock file")
	f.StringVar(&opts.employeeFile, "employee", "", "Employee file (optional)")
	f.StringVar(&opts.storeFile, "store", "", "Store file (optional)")
	f.StringVar(&opts.startDate, "start", "", "period start date, YYYY-MM-DD")
	f.StringVar(&opts.endDate, "end", "", "period end date, YYYY-MM-DD")
	f.StringVarP(&opts.out, "out", "o", "", "report path, stdout when empty")
	_ = cmd.MarkFlagRequired("time")
	cmd.MarkFlagsRequiredTogether("start", "end")
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts analyzeOptions, logger *slog.Logger) error {
	var in port.AnalysisInput
	var err error

	if in.TimeEntries, err = readFile(opts.timeFile, pipefile.ReadTimeEntries); err != nil {
		return err
	}
	if opts.employeeFile != "" {
		if in.Employees, err = readFile(opts.employeeFile, pipefile.ReadEmployees); err != nil {
			return err
		}
	}
	if opts.storeFile != "" {
		if in.Stores, err = readFile(opts.storeFile, pipefile.ReadStores); err != nil {
			return err
		}
	}

	var period *domain.Period
	if opts.startDate != "" {
		start, err := time.ParseInLocation(time.DateOnly, opts.startDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := time.ParseInLocation(time.DateOnly, opts.endDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
		if end.Before(start) {
			return errors.New("--end is before --start")
		}
		p := domain.DatePeriod(start, end)
		period = &p
	}

	a, err := usecase.NewPayrollUseCase(nil, logger).Analyze(cmd.Context(), in, period)
	if err != nil {
		return err
	}
	if n := a.MissingNames(); n > 0 {
		logger.Warn("employees missing names; showing IDs only", slog.Int("count", n))
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return report.WriteCSV(w, a)
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
