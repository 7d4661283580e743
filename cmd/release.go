// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BaselElsoudi/CinemaSeatReservation/internal/booking"
	cerrors "github.com/BaselElsoudi/CinemaSeatReservation/internal/errors"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	releaseSeatsFlag string
	releaseYesFlag   bool
)

// releaseCmd deletes reservations for the given seats. Seats that are not
// reserved are reported and skipped; they never reach the authority.
var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Delete reservations for seats",
	Long: `The release command deletes reservations for the given seats. Seats are
given as comma-separated ROW-COL labels, e.g. --seats 1-1,2-3. Only seats the
authority currently reports as reserved are sent; the rest are reported and
skipped. Deletion asks for confirmation unless --yes is given.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		seats, err := parseSeatList(releaseSeatsFlag)
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

		confirm := confirmRelease
		if releaseYesFlag {
			confirm = nil
		}

		var msg string
		err = withSpinner("Releasing seats...", func() error {
			var releaseErr error
			msg, releaseErr = ctl.Release(cmd.Context(), confirm)
			return releaseErr
		})
		if errors.Is(err, booking.ErrCancelled) {
			pterm.Println("Release cancelled.")
			return nil
		}
		if err != nil {
			return err
		}

		pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("✔ " + msg))
		pterm.Println()
		pterm.Print(render.Grid(ctl.Board()))
		return nil
	},
}

func init() {
	releaseCmd.Flags().StringVar(&releaseSeatsFlag, "seats", "", "Comma-separated seat labels to release, e.g. 1-1,2-3")
	releaseCmd.Flags().BoolVar(&releaseYesFlag, "yes", false, "Skip the confirmation prompt")
	_ = releaseCmd.MarkFlagRequired("seats")
	rootCmd.AddCommand(releaseCmd)
}

// confirmRelease asks the operator to confirm deletion of the eligible seats.
func confirmRelease(eligible []protocol.Seat) bool {
	pterm.Println(pterm.NewStyle(pterm.FgYellow, pterm.Bold).
		Sprint("About to delete reservations for: " + protocol.JoinSeats(eligible)))
	pterm.Println("This action cannot be undone.")
	fmt.Print("Proceed? [y/N] ")

	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
