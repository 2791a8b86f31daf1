package rtlog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptrt/scriptrt/internal/rtlog"
)

func TestDefault_noBackend_isNoOp(t *testing.T) {
	rtlog.Reset()
	defer rtlog.Reset()

	// None of this should panic, allocate a live event, or write anywhere:
	// Default() returns a logiface.Logger with no writer configured.
	rtlog.Info().Str("k", "v").Log("unconfigured")
	rtlog.Err(errors.New("boom")).Log("also unconfigured")

	assert.False(t, rtlog.Default().Level().Enabled())
}

func TestSetBackend_writesThroughZerolog(t *testing.T) {
	rtlog.Reset()
	defer rtlog.Reset()

	var buf bytes.Buffer
	rtlog.SetBackend(zerolog.New(&buf))

	rtlog.Info().Str("script", "s1").Log("loaded")

	require.NotZero(t, buf.Len())
	assert.Contains(t, buf.String(), "loaded")
	assert.Contains(t, buf.String(), "s1")
}

func TestSetLogger_thenReset_revertsToNoOp(t *testing.T) {
	rtlog.Reset()
	defer rtlog.Reset()

	var buf bytes.Buffer
	rtlog.SetBackend(zerolog.New(&buf))
	rtlog.Info().Log("first")
	require.NotZero(t, buf.Len())

	rtlog.Reset()
	buf.Reset()
	rtlog.Info().Log("second")
	assert.Zero(t, buf.Len())
}
