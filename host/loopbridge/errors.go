package loopbridge

import "errors"

// Sentinel errors, a trimmed analogue of eventloop's ErrLoop* family —
// only the subset loopbridge.Loop's smaller surface can actually raise.
var (
	// ErrAlreadyRunning is returned by Run on a Loop already running.
	ErrAlreadyRunning = errors.New("loopbridge: loop is already running")

	// ErrTerminated is returned by Run on a Loop that has already shut
	// down.
	ErrTerminated = errors.New("loopbridge: loop has been terminated")
)
