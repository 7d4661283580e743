// Package main is the entry point for the cinemactl application.
// It provides a terminal client for the external cinema reservation authority.
package main

import (
	"github.com/BaselElsoudi/CinemaSeatReservation/cmd"
)

// main is the entry point for the cinemactl application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
