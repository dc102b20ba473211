// Package config provides the process-wide configuration, combining
// command-line flags, an optional .env file and environment variables.
// Environment variables win over flags.
package config

import (
	"errors"
	"flag"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port is the listening port for the HTTP server.
	Port string `env:"PORT"`

	// BaseScheme is the scheme used when building returned short links.
	BaseScheme string `env:"BASE_SCHEME"`

	// LogAPIURL is the remote log collector endpoint. Required.
	LogAPIURL string `env:"LOG_API_URL"`

	// LogAuthToken is the bearer token for the log collector. Required.
	LogAuthToken string `env:"AUTH_TOKEN"`

	// LogLevel sets the local zap level.
	LogLevel string `env:"LOG_LEVEL"`

	// SweepInterval enables the background eviction of expired links when
	// set to a positive duration, e.g. "5m". Zero keeps expired entries
	// in the store.
	SweepInterval string `env:"SWEEP_INTERVAL"`

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool `env:"ENABLE_PPROF"`

	// EnableHTTPS indicates whether to serve TLS via autocert.
	EnableHTTPS bool `env:"ENABLE_HTTPS"`

	// TLSHosts is the autocert host whitelist, used with EnableHTTPS.
	TLSHosts []string `env:"TLS_HOSTS"`
}

// ErrMissingLogConfig aborts startup when the collector credentials are
// absent.
var ErrMissingLogConfig = errors.New("missing required environment variables: AUTH_TOKEN and/or LOG_API_URL")

var (
	portFlag        = flag.String("p", "3000", "listening port")
	baseSchemeFlag  = flag.String("b", "http", "scheme for returned short links")
	logLevelFlag    = flag.String("l", "info", "log level")
	sweepFlag       = flag.String("sweep", "", "expiry sweep interval, empty disables eviction")
	enablePprofFlag = flag.Bool("pprof", false, "enable pprof")
	enableHTTPSFlag = flag.Bool("s", false, "enable https")
)

// Parse resolves the configuration: flag defaults first, then a .env file if
// present, then environment variables.
func Parse() (*Options, error) {
	if !flag.Parsed() {
		flag.Parse()
	}

	// A missing .env file is fine, the environment may be set directly.
	_ = godotenv.Load()

	opts := &Options{
		Port:          *portFlag,
		BaseScheme:    *baseSchemeFlag,
		LogLevel:      *logLevelFlag,
		SweepInterval: *sweepFlag,
		EnablePprof:   *enablePprofFlag,
		EnableHTTPS:   *enableHTTPSFlag,
	}

	if err := env.Parse(opts); err != nil {
		return nil, err
	}

	return opts, nil
}

// Validate enforces the startup requirements. The process must refuse to
// start without the log collector credentials.
func (o *Options) Validate() error {
	if o.LogAPIURL == "" || o.LogAuthToken == "" {
		return ErrMissingLogConfig
	}
	return nil
}
