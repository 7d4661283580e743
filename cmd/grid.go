// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// gridCmd fetches a fresh layout from the authority and renders the seating
// grid with reserved seats marked.
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Show the seating grid with current reservations",
	Long: `The grid command asks the reservation authority for a fresh layout and
renders the seating grid. Reserved seats are shown in red. The layout is
replaced wholesale on every call; nothing is cached between invocations.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, render, err := newController()
		if err != nil {
			return err
		}

		if err := withSpinner("Fetching layout...", func() error {
			return ctl.Refresh(cmd.Context())
		}); err != nil {
			return err
		}

		pterm.Println()
		pterm.Print(render.Grid(ctl.Board()))
		pterm.Println()
		pterm.Println(render.Legend(ctl.Board()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)
}
