package main

import (
	"log/slog"
	"os"
)

// main is the entry point of payroll-analyzer. Every command reports its
// failure through the returned error, which turns into exit status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
