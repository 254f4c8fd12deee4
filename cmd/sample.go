package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"payroll-analyzer/internal/sample"
)

func newSampleCmd() *cobra.Command {
	var (
		dir       string
		seed      int64
		stores    int
		employees int
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write demo data files for the last pay period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, err := bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err = sample.WriteDir(dir, sample.Generate(seed, time.Now(), stores, employees)); err != nil {
				return err
			}
			logger.Info("sample data written", slog.String("dir", dir))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&dir, "dir", "sample-data", "output directory")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.IntVar(&stores, "stores", 3, "number of stores")
	f.IntVar(&employees, "employees", 5, "employees per store")
	return cmd
}
