// Package launcher binds the process to its configured port and runs a single
// entry point until the host asks it to stop. The entry point is either an
// in-process server or an external runner that replaces the process.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"payroll-analyzer/internal/config/configs"
)

var (
	// ErrBind is returned when the listening socket cannot be opened,
	// typically because the port is already in use.
	ErrBind = errors.New("bind listener")
	// ErrNoEntryPoint is returned when no runnable entry point is available.
	ErrNoEntryPoint = errors.New("entry point not found")
)

// Settings is the runtime configuration resolved once at startup.
type Settings struct {
	Address string
	Port    uint16
}

// NewSettings returns Settings for port bound to all interfaces.
func NewSettings(port uint16) Settings {
	return Settings{Address: configs.BindAddress, Port: port}
}

// ListenAddr returns the host:port pair passed to net.Listen.
func (s Settings) ListenAddr() string {
	return net.JoinHostPort(s.Address, strconv.Itoa(int(s.Port)))
}

// App is an in-process entry point. *http.Server satisfies it.
type App interface {
	Serve(ln net.Listener) error
	Shutdown(ctx context.Context) error
}

// Launcher owns the listening socket for an App.
type Launcher struct {
	settings        Settings
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// New creates a Launcher. A zero shutdownTimeout waits for in-flight work
// without limit.
func New(settings Settings, shutdownTimeout time.Duration, logger *slog.Logger) *Launcher {
	return &Launcher{settings: settings, shutdownTimeout: shutdownTimeout, logger: logger}
}

// Run binds the configured address, serves app on it and blocks until ctx is
// cancelled or the app stops on its own. Bind failures are reported before
// app sees any listener.
func (l *Launcher) Run(ctx context.Context, app App) error {
	ln, err := net.Listen("tcp", l.settings.ListenAddr())
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrBind, l.settings.ListenAddr(), err)
	}
	l.logger.Info("server listening",
		slog.String("address", l.settings.Address),
		slog.Int("port", int(l.settings.Port)),
	)

	g, gctx := errgroup.WithContext(ctx)
	stopped := make(chan struct{})

	g.Go(func() error {
		defer close(stopped)
		if err := app.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-stopped:
			return nil
		case <-gctx.Done():
		}
		l.logger.Info("shutting down")

		shutdownCtx := context.Background()
		if l.shutdownTimeout > 0 {
			var cancel context.CancelFunc
			shutdownCtx, cancel = context.WithTimeout(shutdownCtx, l.shutdownTimeout)
			defer cancel()
		}
		if err := app.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		l.logger.Info("server gracefully stopped")
		return nil
	})

	return g.Wait()
}
