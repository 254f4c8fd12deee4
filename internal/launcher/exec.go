package launcher

import (
	"fmt"
	"net"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

// execve replaces the current process image. Tests swap it out.
var execve = syscall.Exec

// lookPath resolves the runner binary. Tests swap it out.
var lookPath = exec.LookPath

// Command returns the argv for an external runner: the runner itself
// followed by the server port and address flags.
func Command(settings Settings, runner []string) []string {
	argv := make([]string, 0, len(runner)+4)
	argv = append(argv, runner...)
	return append(argv,
		"--server.port", strconv.Itoa(int(settings.Port)),
		"--server.address", settings.Address,
	)
}

// Exec replaces the process with the external runner. PORT is exported to
// the child so it sees the resolved value even when the default applied.
// Exec only returns on failure.
func Exec(settings Settings, runner []string, environ []string) error {
	if len(runner) == 0 {
		return ErrNoEntryPoint
	}
	if err := probe(settings); err != nil {
		return err
	}

	path, err := lookPath(runner[0])
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNoEntryPoint, runner[0], err)
	}

	argv := Command(settings, runner)
	envv := append(withoutKey(environ, "PORT"), "PORT="+strconv.Itoa(int(settings.Port)))
	if err = execve(path, argv, envv); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}

// probe fails fast when the port is already taken so the runner is never
// started against an occupied socket.
func probe(settings Settings) error {
	ln, err := net.Listen("tcp", settings.ListenAddr())
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrBind, settings.ListenAddr(), err)
	}
	return ln.Close()
}

func withoutKey(environ []string, key string) []string {
	prefix := key + "="
	out := make([]string, 0, len(environ)+1)
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return out
}
