// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// listCmd shows every reservation the authority currently holds.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all reservations",
	Long: `The list command asks the authority for every reservation it holds and
renders them as a table of seat, ticket id, and client name. Reservations
with no recorded client show as Anonymous.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, render, err := newController()
		if err != nil {
			return err
		}

		var reservations []protocol.Reservation
		err = withSpinner("Listing reservations...", func() error {
			var listErr error
			reservations, listErr = ctl.List(cmd.Context())
			return listErr
		})
		if err != nil {
			return err
		}

		out, err := render.Reservations(reservations)
		if err != nil {
			return err
		}
		pterm.Println()
		pterm.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
