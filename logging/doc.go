// Package logging provides a minimal logging interface and adapters for
// SupportMesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the router and handlers use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - SupportLogger with thread/turn context and domain helpers
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	r := router.New(func(o *router.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
