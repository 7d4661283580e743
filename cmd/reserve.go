// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/booking"
	cerrors "github.com/BaselElsoudi/CinemaSeatReservation/internal/errors"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	reserveSeatsFlag  string
	reserveClientFlag string
)

// reserveCmd reserves the given seats with the authority. Any seat may be
// requested, reserved or not; the authority is the sole arbiter of conflicts
// and reports per-seat failures itself.
var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Reserve seats",
	Long: `The reserve command submits a reservation request for the given seats.
Seats are given as comma-separated ROW-COL labels, e.g. --seats 1-1,1-2.
The optional client name is attached to the reservation; without it the
reservation is anonymous.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		seats, err := parseSeatList(reserveSeatsFlag)
		if err != nil {
			return cerrors.Wrap(cerrors.ValidationError, "invalid --seats", err)
		}

		ctl, render, err := newController()
		if err != nil {
			return err
		}

		if err := withSpinner("Fetching layout...", func() error {
			return ctl.Refresh(cmd.Context())
		}); err != nil {
			return err
		}
		if err := stageSeats(ctl, seats); err != nil {
			return err
		}

		client := reserveClientFlag
		if client == "" {
			client = defaultClient()
		}

		var tickets []string
		err = withSpinner("Reserving seats...", func() error {
			var reserveErr error
			tickets, reserveErr = ctl.Reserve(cmd.Context(), client)
			return reserveErr
		})
		if err != nil {
			return err
		}

		box := "Reservation successful.\nTickets:"
		for _, t := range tickets {
			box += "\n" + t
		}
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("Reserved")).
			WithTopPadding(1).
			WithBottomPadding(1).
			WithLeftPadding(1).
			WithRightPadding(1).
			Println(box)
		pterm.Println()
		pterm.Print(render.Grid(ctl.Board()))
		return nil
	},
}

func init() {
	reserveCmd.Flags().StringVar(&reserveSeatsFlag, "seats", "", "Comma-separated seat labels to reserve, e.g. 1-1,1-2")
	reserveCmd.Flags().StringVar(&reserveClientFlag, "client", "", "Client name to attach to the reservation (optional)")
	_ = reserveCmd.MarkFlagRequired("seats")
	rootCmd.AddCommand(reserveCmd)
}

// stageSeats toggles the given seats onto the board, rejecting seats outside
// the grid before anything reaches the authority.
func stageSeats(ctl *booking.Controller, seats []protocol.Seat) error {
	board := ctl.Board()
	for _, seat := range seats {
		if !board.Contains(seat) {
			return cerrors.New(cerrors.ValidationError,
				"seat "+seat.String()+" is outside the grid")
		}
		board.Toggle(seat)
	}
	return nil
}
