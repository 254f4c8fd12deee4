package configs

import "strings"

// EntryPoint configures an external application started in place of the
// built-in analyzer, e.g. ENTRYPOINT_RUNNER="streamlit run app.py".
type EntryPoint struct {
	Runner string `env:"RUNNER"`
}

// Argv splits Runner into the program and its arguments.
func (e EntryPoint) Argv() []string {
	return strings.Fields(e.Runner)
}

// External reports whether an external runner is configured.
func (e EntryPoint) External() bool {
	return len(e.Argv()) > 0
}
