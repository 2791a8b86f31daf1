package rtlog

import (
	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
)

// Builder is the fluent field-builder type returned by Info, Debug,
// Warning and Err below.
type Builder = logiface.Builder[*izerolog.Event]

// Info starts an informational-level builder chain on the package-level
// logger, e.g. rtlog.Info().Str("script", id).Log("loaded").
func Info() *Builder { return Default().Info() }

// Debug starts a debug-level builder chain on the package-level logger.
func Debug() *Builder { return Default().Debug() }

// Warning starts a warning-level builder chain on the package-level logger.
func Warning() *Builder { return Default().Warning() }

// Err starts an error-level builder chain, pre-populated with err, on the
// package-level logger.
func Err(err error) *Builder {
	return Default().Err().Err(err)
}
