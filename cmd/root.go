// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for cinemactl.
// It implements subcommands for viewing the seating grid, reserving and
// releasing seats, and listing reservations against the external reservation
// authority, using the Cobra CLI framework with a pterm terminal UI.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BaselElsoudi/CinemaSeatReservation/internal/authority"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/booking"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/config"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/grid"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/logging"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/selection"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	showVersion   bool
	authorityFlag string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cinemactl",
	Short: "Cinema seat reservation client for an external authority process",
	Long: `cinemactl is a terminal client for a cinema seat reservation authority that
runs as a separate, independently-built process. It locates and launches the
authority, speaks its JSON request/response protocol, and manages the local
seat selection between calls.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("cinemactl %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&authorityFlag, "authority", "", "Path to the reservation authority (managed library or executable)")
}

// resolveAuthorityPath picks the authority path by precedence:
// flag > CINEMA_AUTHORITY env > config file > conventional build locations.
func resolveAuthorityPath(cfg config.Config) string {
	if strings.TrimSpace(authorityFlag) != "" {
		return strings.TrimSpace(authorityFlag)
	}
	if env := strings.TrimSpace(os.Getenv("CINEMA_AUTHORITY")); env != "" {
		return env
	}
	if strings.TrimSpace(cfg.AuthorityPath) != "" {
		return strings.TrimSpace(cfg.AuthorityPath)
	}
	return config.DefaultAuthorityPath()
}

// pterm-backed notifier for controller warnings.
type ptermNotifier struct{}

func (ptermNotifier) Warnf(format string, args ...any) {
	pterm.Println(pterm.NewStyle(pterm.FgYellow).Sprint("⚠️  " + fmt.Sprintf(format, args...)))
}

// newController wires config, candidate resolution, invoker, board, and
// renderer together for a command invocation.
func newController() (*booking.Controller, *grid.Renderer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	acfg := authority.DefaultConfig()
	if cfg.TimeoutSeconds > 0 {
		acfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	path := resolveAuthorityPath(cfg)
	candidates := authority.Resolve(path, acfg)
	inv := authority.NewInvoker(candidates, acfg.Timeout, logging.New())
	board := selection.NewBoard(cfg.Rows, cfg.Cols)
	ctl := booking.NewController(inv, board, ptermNotifier{})
	return ctl, grid.NewRenderer(), nil
}

// defaultClient returns the configured default client name, if any.
func defaultClient() string {
	cfg, err := config.Load()
	if err != nil {
		return ""
	}
	return cfg.Client
}
