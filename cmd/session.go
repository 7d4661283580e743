// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BaselElsoudi/CinemaSeatReservation/internal/booking"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/grid"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/logging"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/terminal"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// sessionCmd runs the interactive seat-selection loop: render the grid,
// toggle seats, and submit reserve/release/list actions against the
// authority, one blocking call at a time.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactive seat selection session",
	Long: `The session command starts an interactive loop over the seating grid.
Toggle seats on and off the selection, then reserve or release them. The
selection is local staging only: it is cleared by every refresh and the
authority remains the sole owner of reservation state.

Verbs: toggle SEAT..., reserve [CLIENT], release, list, refresh, clear,
help, quit.`,

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

		cursor.Hide()
		defer cursor.Show()

		return runSession(cmd.Context(), ctl, render)
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

// runSession drives the prompt loop until the operator quits or stdin closes.
func runSession(ctx context.Context, ctl *booking.Controller, render *grid.Renderer) error {
	reader := bufio.NewReader(os.Stdin)

	for {
		pterm.Println()
		pterm.Print(render.Grid(ctl.Board()))
		pterm.Println(render.Legend(ctl.Board()))
		pterm.Println()

		cursor.Show()
		prompt := "cinema> "
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			// stdin closed; leave quietly
			pterm.Println()
			return nil
		}
		cursor.Hide()
		line = strings.TrimSpace(line)
		terminal.ClearPreviousLines(len(prompt) + len(line))
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		verb, rest := strings.ToLower(fields[0]), fields[1:]

		switch verb {
		case "q", "quit", "exit":
			return nil
		case "h", "help":
			printSessionHelp()
		case "t", "toggle":
			sessionToggle(ctl, rest)
		case "c", "clear":
			ctl.Board().ClearSelection()
			pterm.Println("Selection cleared.")
		case "f", "refresh":
			if err := withSpinner("Fetching layout...", func() error {
				return ctl.Refresh(ctx)
			}); err != nil {
				pterm.Println(pterm.NewStyle(pterm.FgRed).Sprint("❌ " + logging.PresentError("refresh failed", err)))
			} else {
				pterm.Println("Layout refreshed.")
			}
		case "r", "reserve":
			sessionReserve(ctx, ctl, strings.Join(rest, " "), reader)
		case "d", "release", "delete":
			sessionRelease(ctx, ctl)
		case "l", "list":
			sessionList(ctx, ctl, render)
		default:
			pterm.Println(pterm.NewStyle(pterm.FgYellow).Sprintf("Unknown verb %q, try help.", verb))
		}
	}
}

func printSessionHelp() {
	pterm.Println(`  toggle SEAT...   flip seats in/out of the selection, e.g. toggle 1-1 1-2
  reserve [NAME]   reserve the selected seats, optionally for client NAME
  release          delete reservations for the selected reserved seats
  list             list all reservations
  refresh          reload the layout (clears the selection)
  clear            clear the selection
  quit             leave the session`)
}

func sessionToggle(ctl *booking.Controller, labels []string) {
	if len(labels) == 0 {
		pterm.Println("Usage: toggle SEAT..., e.g. toggle 1-1 1-2")
		return
	}
	board := ctl.Board()
	for _, label := range labels {
		seat, err := protocol.ParseSeat(label)
		if err != nil {
			pterm.Println(pterm.NewStyle(pterm.FgYellow).Sprint("⚠️  " + err.Error()))
			continue
		}
		if !board.Contains(seat) {
			pterm.Println(pterm.NewStyle(pterm.FgYellow).Sprintf("⚠️  seat %s is outside the grid", seat))
			continue
		}
		board.Toggle(seat)
	}
}

func sessionReserve(ctx context.Context, ctl *booking.Controller, client string, reader *bufio.Reader) {
	if ctl.Board().SelectionCount() == 0 {
		pterm.Println("Select one or more seats to reserve.")
		return
	}
	if client == "" {
		prompt := "Client name (optional): "
		fmt.Print(prompt)
		line, _ := reader.ReadString('\n')
		client = strings.TrimSpace(line)
		terminal.ClearPreviousLines(len(prompt) + len(client))
	}
	if client == "" {
		client = defaultClient()
	}

	var tickets []string
	err := withSpinner("Reserving seats...", func() error {
		var reserveErr error
		tickets, reserveErr = ctl.Reserve(ctx, client)
		return reserveErr
	})
	if err != nil {
		pterm.Println(pterm.NewStyle(pterm.FgRed).Sprint("❌ " + logging.PresentError("reservation failed", err)))
		return
	}
	pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("✔ Reserved. Tickets: " + strings.Join(tickets, ", ")))
}

func sessionRelease(ctx context.Context, ctl *booking.Controller) {
	if ctl.Board().SelectionCount() == 0 {
		pterm.Println("Select one or more RESERVED seats to release.")
		return
	}
	var msg string
	err := withSpinner("Releasing seats...", func() error {
		var releaseErr error
		msg, releaseErr = ctl.Release(ctx, confirmRelease)
		return releaseErr
	})
	if errors.Is(err, booking.ErrCancelled) {
		pterm.Println("Release cancelled.")
		return
	}
	if err != nil {
		pterm.Println(pterm.NewStyle(pterm.FgRed).Sprint("❌ " + logging.PresentError("release failed", err)))
		return
	}
	pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("✔ " + msg))
}

func sessionList(ctx context.Context, ctl *booking.Controller, render *grid.Renderer) {
	var reservations []protocol.Reservation
	err := withSpinner("Listing reservations...", func() error {
		var listErr error
		reservations, listErr = ctl.List(ctx)
		return listErr
	})
	if err != nil {
		pterm.Println(pterm.NewStyle(pterm.FgRed).Sprint("❌ " + logging.PresentError("list failed", err)))
		return
	}
	out, err := render.Reservations(reservations)
	if err != nil {
		pterm.Println(pterm.NewStyle(pterm.FgRed).Sprint("❌ " + err.Error()))
		return
	}
	pterm.Println(out)
}
