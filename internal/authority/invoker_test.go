// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package authority

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	cerrors "github.com/BaselElsoudi/CinemaSeatReservation/internal/errors"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shCandidate wraps a shell script as a candidate. The trailing "sh" becomes
// $0, so a payload appended by argument delivery arrives as $1.
func shCandidate(script string) Candidate {
	return Candidate{"/bin/sh", "-c", script, "sh"}
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests drive /bin/sh authorities")
	}
}

func newTestInvoker(timeout time.Duration, candidates ...Candidate) *Invoker {
	return NewInvoker(candidates, timeout, nil)
}

func TestInvokeStdinDeliveryTriedFirstAndShortCircuits(t *testing.T) {
	requireShell(t)

	// The first candidate answers only when the payload arrives on stdin;
	// the second would also answer but must never be consulted.
	first := shCandidate(`in=$(cat); if [ -n "$in" ]; then echo '{"status":"ok","message":"first-stdin"}'; fi`)
	second := shCandidate(`echo '{"status":"ok","message":"second"}'`)

	inv := newTestInvoker(5*time.Second, first, second)
	resp, err := inv.Invoke(context.Background(), protocol.NewListRequest())
	require.NoError(t, err)
	assert.Equal(t, "first-stdin", resp.Message)
}

func TestInvokeFallsBackToArgumentDelivery(t *testing.T) {
	requireShell(t)

	// Empty stdout under stdin delivery is exhausted silently; the same
	// candidate then answers when the payload arrives as $1.
	cand := shCandidate(`cat >/dev/null; if [ -n "$1" ]; then echo '{"status":"ok","message":"arg"}'; fi`)

	inv := newTestInvoker(5*time.Second, cand)
	resp, err := inv.Invoke(context.Background(), protocol.NewListRequest())
	require.NoError(t, err)
	assert.Equal(t, "arg", resp.Message)
}

func TestInvokeCommandNotFound(t *testing.T) {
	requireShell(t)

	missing1 := Candidate{"/no/such/dir/cinemalogic"}
	missing2 := Candidate{"/also/missing/dotnet", "logic.dll"}

	inv := newTestInvoker(5*time.Second, missing1, missing2)
	_, err := inv.Invoke(context.Background(), protocol.NewListRequest())
	require.Error(t, err)
	assert.True(t, cerrors.HasKind(err, cerrors.CandidateExhausted), "want CandidateExhausted, got %v", err)
	assert.Contains(t, err.Error(), "command not found")
	assert.Contains(t, err.Error(), "/no/such/dir/cinemalogic")
	assert.Contains(t, err.Error(), "/also/missing/dotnet")
}

func TestInvokeMalformedResponseStopsImmediately(t *testing.T) {
	requireShell(t)

	marker := filepath.Join(t.TempDir(), "second-was-run")
	bad := shCandidate(`echo 'not json'`)
	good := shCandidate(fmt.Sprintf(`touch %s; echo '{"status":"ok"}'`, marker))

	inv := newTestInvoker(5*time.Second, bad, good)
	_, err := inv.Invoke(context.Background(), protocol.NewListRequest())
	require.Error(t, err)
	assert.True(t, cerrors.HasKind(err, cerrors.MalformedResponse), "want MalformedResponse, got %v", err)
	assert.Contains(t, err.Error(), "not json")

	// The wrong program answered; no later candidate may mask that.
	_, statErr := os.Stat(marker)
	assert.True(t, os.IsNotExist(statErr), "later candidate was attempted after malformed output")
}

func TestInvokeTimeoutIsSoftAndTerminatesChild(t *testing.T) {
	requireShell(t)

	slow := shCandidate(`sleep 30`)
	good := shCandidate(`cat >/dev/null; echo '{"status":"ok","message":"after-timeout"}'`)

	inv := newTestInvoker(200*time.Millisecond, slow, good)
	start := time.Now()
	resp, err := inv.Invoke(context.Background(), protocol.NewListRequest())
	require.NoError(t, err)
	assert.Equal(t, "after-timeout", resp.Message)
	// Two timed-out attempts plus the successful one, nowhere near 30s.
	assert.Less(t, time.Since(start), 10*time.Second)
}

// Stderr is diagnostic-only even on a successful call. This is deliberately
// lenient: a well-behaved authority reporting partial failures on stderr is
// not aborted as long as stdout carries a parseable response.
func TestInvokeStderrDoesNotAbortAttempt(t *testing.T) {
	requireShell(t)

	cand := shCandidate(`cat >/dev/null; echo 'warning: degraded' >&2; echo '{"status":"ok","message":"fine"}'`)

	inv := newTestInvoker(5*time.Second, cand)
	resp, err := inv.Invoke(context.Background(), protocol.NewListRequest())
	require.NoError(t, err)
	assert.Equal(t, "fine", resp.Message)
}

func TestInvokeNonZeroExitWithOutputStillSucceeds(t *testing.T) {
	requireShell(t)

	cand := shCandidate(`cat >/dev/null; echo '{"status":"ok","message":"exit3"}'; exit 3`)

	inv := newTestInvoker(5*time.Second, cand)
	resp, err := inv.Invoke(context.Background(), protocol.NewListRequest())
	require.NoError(t, err)
	assert.Equal(t, "exit3", resp.Message)
}

func TestInvokeAggregatesDiagnosticsInAttemptOrder(t *testing.T) {
	requireShell(t)

	silent := shCandidate(`cat >/dev/null; :`)

	inv := newTestInvoker(5*time.Second, silent)
	_, err := inv.Invoke(context.Background(), protocol.NewListRequest())
	require.Error(t, err)
	assert.True(t, cerrors.HasKind(err, cerrors.CandidateExhausted))

	text := err.Error()
	stdinIdx := strings.Index(text, "(stdin)")
	argIdx := strings.Index(text, "(arg)")
	require.GreaterOrEqual(t, stdinIdx, 0, "missing stdin-delivery diagnostic:\n%s", text)
	require.GreaterOrEqual(t, argIdx, 0, "missing argument-delivery diagnostic:\n%s", text)
	assert.Less(t, stdinIdx, argIdx, "stdin delivery must be attempted before argument delivery")
}

func TestInvokeLogicStatusIsStillAResponse(t *testing.T) {
	requireShell(t)

	// A non-"ok" status is a business-level answer, not an invocation
	// failure; interpreting it is the caller's job.
	cand := shCandidate(`cat >/dev/null; echo '{"status":"error","message":"seat taken","failed":[{"row":1,"col":1}]}'`)

	inv := newTestInvoker(5*time.Second, cand)
	resp, err := inv.Invoke(context.Background(), protocol.NewListRequest())
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, "seat taken", resp.Message)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, protocol.Seat{Row: 1, Col: 1}, resp.Failed[0])
}
