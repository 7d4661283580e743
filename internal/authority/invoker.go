// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package authority

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	cerrors "github.com/BaselElsoudi/CinemaSeatReservation/internal/errors"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Delivery is the mechanism used to hand the JSON request to a candidate.
type Delivery string

const (
	// DeliverStdin writes the payload to the child's standard input and
	// closes it. Tried first for every candidate.
	DeliverStdin Delivery = "stdin"
	// DeliverArg appends the payload as one command-line argument and
	// provides no standard input.
	DeliverArg Delivery = "arg"
)

// waitDelay bounds how long a timed-out child may linger before its pipes are
// torn down. Keeps a stuck authority from leaking processes across retries.
const waitDelay = 2 * time.Second

// Invoker drives the ordered candidate list against the authority.
// One child process lifecycle per attempt; the controlling goroutine blocks
// until the attempt resolves.
type Invoker struct {
	candidates []Candidate
	timeout    time.Duration
	log        *zap.Logger
}

// NewInvoker creates an invoker over candidates. A nil logger disables
// diagnostic logging.
func NewInvoker(candidates []Candidate, timeout time.Duration, log *zap.Logger) *Invoker {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Invoker{candidates: candidates, timeout: timeout, log: log}
}

// outcome is the explicit result of a single attempt: a decoded response, a
// hard failure that stops the whole call, or neither (empty output, move on).
type outcome struct {
	resp *protocol.Response
	hard error
}

// Invoke sends req to the authority, trying stdin delivery before argument
// delivery for each candidate in resolver order. The first non-empty stdout
// that decodes as JSON wins and short-circuits everything else. Non-JSON
// output is a hard stop: some program answered, and letting a later candidate
// mask that would turn a misconfiguration into a silent ambiguity. When every
// candidate under every mode yields empty output, the call fails with a
// CandidateExhausted error listing every diagnostic in attempt order.
func (inv *Invoker) Invoke(ctx context.Context, req any) (*protocol.Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ValidationError, "encode request", err)
	}

	log := inv.log.With(zap.String("call_id", uuid.NewString()))
	log.Debug("invoking authority",
		zap.Int("candidates", len(inv.candidates)),
		zap.ByteString("payload", payload))

	var diags []string
	for _, cand := range inv.candidates {
		for _, mode := range []Delivery{DeliverStdin, DeliverArg} {
			out := inv.attempt(ctx, cand, mode, payload, &diags)
			if out.hard != nil {
				log.Debug("attempt failed hard", zap.String("command", cand.String()), zap.Error(out.hard))
				return nil, out.hard
			}
			if out.resp != nil {
				log.Debug("authority answered",
					zap.String("command", cand.String()),
					zap.String("delivery", string(mode)),
					zap.String("status", out.resp.Status))
				return out.resp, nil
			}
		}
	}

	for _, d := range diags {
		log.Debug("attempt diagnostic", zap.String("detail", d))
	}
	return nil, cerrors.New(cerrors.CandidateExhausted,
		"no valid response from authority. Attempts:\n"+strings.Join(diags, "\n"))
}

// attempt runs one (candidate, delivery mode) trial. Launch failures and
// timeouts are soft: they append a diagnostic and yield an empty outcome.
// Only non-empty stdout decides success, and only undecodable non-empty
// stdout is a hard failure.
func (inv *Invoker) attempt(ctx context.Context, cand Candidate, mode Delivery, payload []byte, diags *[]string) outcome {
	argv := append([]string(nil), cand...)
	if mode == DeliverArg {
		argv = append(argv, string(payload))
	}
	label := fmt.Sprintf("%s (%s)", strings.Join(argv, " "), mode)

	attemptCtx, cancel := context.WithTimeout(ctx, inv.timeout)
	defer cancel()

	cmd := exec.CommandContext(attemptCtx, argv[0], argv[1:]...)
	cmd.WaitDelay = waitDelay
	if mode == DeliverStdin {
		cmd.Stdin = bytes.NewReader(payload)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if stderrors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		*diags = append(*diags, fmt.Sprintf("timeout after %s when running: %s", inv.timeout, label))
		return outcome{}
	}

	// A non-zero exit still ran and may have printed a response; only a
	// process that never started is a launch failure.
	var exitErr *exec.ExitError
	if runErr != nil && !stderrors.As(runErr, &exitErr) {
		*diags = append(*diags, fmt.Sprintf("command not found: %s -> %v", label, runErr))
		return outcome{}
	}

	errText := strings.TrimSpace(stderr.String())
	if errText != "" {
		*diags = append(*diags, fmt.Sprintf("command: %s produced stderr: %s", label, errText))
	}

	outText := strings.TrimSpace(stdout.String())
	if outText == "" {
		if runErr != nil {
			*diags = append(*diags, fmt.Sprintf("no output from: %s (exit: %v)", label, runErr))
		} else {
			*diags = append(*diags, fmt.Sprintf("no output from: %s", label))
		}
		return outcome{}
	}

	var resp protocol.Response
	if err := json.Unmarshal([]byte(outText), &resp); err != nil {
		return outcome{hard: cerrors.Wrap(cerrors.MalformedResponse,
			fmt.Sprintf("failed to parse JSON from command %s\nraw stdout: %s\nstderr: %s", label, outText, errText),
			err)}
	}
	return outcome{resp: &resp}
}
