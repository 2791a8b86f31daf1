// Package rtlog is the runtime's internal logging facade: a thin,
// package-level wrapper around github.com/joeycumines/logiface, configured
// by default to write nowhere, and switched to github.com/rs/zerolog via
// github.com/joeycumines/izerolog once a host calls SetBackend.
//
// This mirrors eventloop's own global-logger idiom (SetStructuredLogger /
// getGlobalLogger / NewNoOpLogger): a package-level *logiface.Logger behind
// a mutex, defaulting to a logger with no writer configured so that calls
// made before SetBackend are free (logiface.Logger.Build returns nil and
// every chained call on a nil *Builder is a no-op by construction), with
// no need for a hand-rolled no-op implementation of our own.
package rtlog
