package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"payroll-analyzer/internal/launcher"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec -- RUNNER [ARGS...]",
		Short: "Replace this process with an external entry point",
		Long: `Replace this process with RUNNER, appending
--server.port $PORT --server.address 0.0.0.0. Without arguments the runner
comes from ENTRYPOINT_RUNNER.`,
		Example: "  payroll-analyzer exec -- streamlit run app.py",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(os.Stdout)
			if err != nil {
				return err
			}
			runner := args
			if len(runner) == 0 {
				runner = cfg.EntryPoint.Argv()
			}
			settings := launcher.NewSettings(cfg.HTTP.Port)
			logger.Info("starting external entry point",
				slog.Any("argv", launcher.Command(settings, runner)),
			)
			return launcher.Exec(settings, runner, os.Environ())
		},
	}
}
