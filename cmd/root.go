package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"payroll-analyzer/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "payroll-analyzer",
		Short: "Payroll hours proportion analyzer",
		Long: `payroll-analyzer binds 0.0.0.0:$PORT (default 8080) and serves the payroll
hours proportion analyzer, or hands the port to an external entry point.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newExecCmd(), newAnalyzeCmd(), newSampleCmd())
	return root
}

// bootstrap loads .env, parses the environment and builds a logger writing
// to logOut. Values already present in the environment win over the .env
// file.
func bootstrap(logOut io.Writer) (config.Config, *slog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config.Config{}, nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}

	logger := cfg.Log.New(logOut)
	slog.SetDefault(logger)
	return cfg, logger, nil
}
