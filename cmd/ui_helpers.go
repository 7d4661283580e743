package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"
)

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text,
// updating the same line in the terminal. The spinner runs in a separate
// goroutine; the returned function stops it and clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// primitive protection against very long lines
				if len(line) > 2000 {
					line = line[:2000]
				}
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// withSpinner shows an inline spinner on stdout while fn runs. Commands block
// on each authority invocation, so the spinner is the only liveness signal
// the operator gets during a slow launch.
func withSpinner(text string, fn func() error) error {
	stopSpinner := startInlineSpinner(os.Stdout, text, []string{"-", "\\", "|", "/"}, 100*time.Millisecond)
	defer stopSpinner()
	return fn()
}

// parseSeatList parses a comma-separated list of "ROW-COL" labels.
func parseSeatList(arg string) ([]protocol.Seat, error) {
	var seats []protocol.Seat
	for _, token := range strings.Split(arg, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		seat, err := protocol.ParseSeat(token)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("no seats given: expected a comma-separated list like 1-1,1-2")
	}
	return seats, nil
}
