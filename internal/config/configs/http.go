package configs

import "time"

// BindAddress is the interface the server listens on. It is fixed to all
// interfaces and cannot be changed through the environment.
const BindAddress = "0.0.0.0"

// HTTP defines configuration for the HTTP server. Port is read from the
// bare PORT variable, which is what container platforms inject, while the
// remaining options honour the HTTP_ prefix.
type HTTP struct {
	// Port is the TCP port the server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	// ReadTimeout bounds reading a whole request including uploads.
	ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout is the grace period given to in-flight requests once
	// a termination signal arrives.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// MaxUploadBytes caps the multipart body accepted by the analysis
	// endpoints.
	MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" envDefault:"33554432"`
}
