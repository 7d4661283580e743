// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package booking binds operator actions to authority calls and selection
// state transitions. It owns the one rule that keeps the display honest:
// after any mutation attempt, successful or not, the board is refreshed from
// the authority so local state never silently diverges.
package booking

import (
	"context"
	stderrors "errors"

	cerrors "github.com/BaselElsoudi/CinemaSeatReservation/internal/errors"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/selection"
)

// ErrCancelled is returned when the operator declines a confirmation prompt.
var ErrCancelled = stderrors.New("cancelled by operator")

// Invoker abstracts the authority call so the controller can be exercised
// with a fake in tests.
type Invoker interface {
	Invoke(ctx context.Context, req any) (*protocol.Response, error)
}

// Notifier receives operator-facing notices that are not fatal to the action,
// such as skipped seats or a failed post-mutation refresh.
type Notifier interface {
	Warnf(format string, args ...any)
}

// Controller drives the refresh/select/submit cycle over one board.
type Controller struct {
	inv    Invoker
	board  *selection.Board
	notify Notifier
}

// NewController binds an invoker, a board, and a notifier together.
func NewController(inv Invoker, board *selection.Board, notify Notifier) *Controller {
	return &Controller{inv: inv, board: board, notify: notify}
}

// Board exposes the underlying board for rendering and toggling.
func (c *Controller) Board() *selection.Board { return c.board }

// Refresh pulls a fresh layout and replaces the board state wholesale,
// clearing any staged selection.
func (c *Controller) Refresh(ctx context.Context) error {
	resp, err := c.inv.Invoke(ctx, protocol.NewLayoutRequest(c.board.Rows(), c.board.Cols()))
	if err != nil {
		return err
	}
	if !resp.OK() {
		return logicError(resp, "layout request rejected")
	}
	if resp.Layout == nil {
		return cerrors.New(cerrors.MalformedResponse, "layout response carries no layout")
	}
	c.board.Refresh(*resp.Layout)
	return nil
}

// Reserve submits every staged seat, reserved or not; the authority is the
// sole arbiter of conflicts and reports per-seat failures itself. On success
// the granted ticket ids are returned and the board is refreshed; on a
// business rejection the board is still refreshed best-effort before the
// error is surfaced.
func (c *Controller) Reserve(ctx context.Context, client string) ([]string, error) {
	seats := c.board.Selected()
	if len(seats) == 0 {
		return nil, cerrors.New(cerrors.ValidationError, "select one or more seats to reserve")
	}
	resp, err := c.inv.Invoke(ctx, protocol.NewReserveRequest(seats, client))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		c.refreshAfterMutation(ctx)
		return nil, logicError(resp, "reservation failed")
	}
	tickets := resp.TicketIDs
	c.refreshAfterMutation(ctx)
	return tickets, nil
}

// Release deletes reservations for the eligible part of the selection. Seats
// staged but not reserved never reach the authority: they are reported via
// the notifier and skipped, and when nothing eligible remains the action is
// aborted locally. confirm, when non-nil, is consulted with the eligible
// seats before the request goes out; declining returns ErrCancelled.
func (c *Controller) Release(ctx context.Context, confirm func(eligible []protocol.Seat) bool) (string, error) {
	if c.board.SelectionCount() == 0 {
		return "", cerrors.New(cerrors.ValidationError, "select one or more reserved seats to release")
	}
	eligible, ineligible := c.board.PartitionForRelease()
	if len(ineligible) > 0 {
		c.notify.Warnf("skipping seats that are not reserved: %s", protocol.JoinSeats(ineligible))
	}
	if len(eligible) == 0 {
		return "", cerrors.New(cerrors.ValidationError, "none of the selected seats are reserved")
	}
	if confirm != nil && !confirm(eligible) {
		return "", ErrCancelled
	}
	resp, err := c.inv.Invoke(ctx, protocol.NewReleaseRequest(eligible))
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		c.refreshAfterMutation(ctx)
		return "", logicError(resp, "release failed")
	}
	msg := resp.Message
	if msg == "" {
		msg = "reservations deleted"
	}
	c.refreshAfterMutation(ctx)
	return msg, nil
}

// List returns every reservation the authority holds. Read-only, so no
// refresh is induced and the staged selection survives.
func (c *Controller) List(ctx context.Context) ([]protocol.Reservation, error) {
	resp, err := c.inv.Invoke(ctx, protocol.NewListRequest())
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, logicError(resp, "list reservations failed")
	}
	return resp.Reservations, nil
}

// refreshAfterMutation realigns the board with the authority after a
// mutation attempt. A refresh failure here is a secondary warning, never
// fatal to the action that triggered it.
func (c *Controller) refreshAfterMutation(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		c.notify.Warnf("displayed state may be stale, refresh failed: %v", err)
	}
}

// logicError surfaces the authority's own rejection message, extended with
// the per-seat failure list when the authority distinguished one.
func logicError(resp *protocol.Response, fallback string) error {
	msg := resp.Message
	if msg == "" {
		msg = fallback
	}
	if len(resp.Failed) > 0 {
		msg += "\nfailed seats: " + protocol.JoinSeats(resp.Failed)
	}
	return cerrors.New(cerrors.LogicError, msg)
}
