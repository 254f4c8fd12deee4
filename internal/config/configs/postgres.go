package configs

import "time"

// Postgres holds configuration for the optional analysis archive. Addr is a
// full connection string accepted by pgxpool. An empty Addr disables the
// archive entirely.
type Postgres struct {
	// Addr is a PostgreSQL connection string. It should include the
	// sslmode parameter if required.
	Addr string `env:"ADDRESS"`
	// RunMigrations controls whether database migrations are executed on
	// startup. Only honoured when Addr is set.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`
	// MaxConns caps the archive pool. Zero keeps the pgxpool default.
	MaxConns int32 `env:"MAX_CONNS" envDefault:"4"`
	// PingTimeout bounds the startup connectivity check.
	PingTimeout time.Duration `env:"PING_TIMEOUT" envDefault:"5s"`
}

// Enabled reports whether an archive database is configured.
func (p Postgres) Enabled() bool {
	return p.Addr != ""
}
