// Package grid renders the seating grid and reservation listings to the
// terminal. Rendering reads board state only; it never mutates selection or
// reserved sets.
package grid

import (
	"fmt"
	"strings"

	"github.com/BaselElsoudi/CinemaSeatReservation/internal/protocol"
	"github.com/BaselElsoudi/CinemaSeatReservation/internal/selection"

	"github.com/pterm/pterm"
)

var (
	reservedStyle = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	selectedStyle = pterm.NewStyle(pterm.FgBlack, pterm.BgCyan)
	bothStyle     = pterm.NewStyle(pterm.FgRed, pterm.BgCyan, pterm.Bold)
	freeStyle     = pterm.NewStyle(pterm.FgDefault)
	dimStyle      = pterm.NewStyle(pterm.FgGray)
)

// Renderer draws the seating grid with selection and reservation markers.
type Renderer struct{}

// NewRenderer creates a renderer instance.
func NewRenderer() *Renderer { return &Renderer{} }

// Grid renders the full seating grid. Reserved seats are red, staged seats
// are highlighted, seats that are both keep both markers. Cell labels are the
// same "ROW-COL" form the protocol and flags use.
func (r *Renderer) Grid(b *selection.Board) string {
	var sb strings.Builder

	width := len(protocol.Seat{Row: b.Rows(), Col: b.Cols()}.String()) + 2

	for row := 1; row <= b.Rows(); row++ {
		for col := 1; col <= b.Cols(); col++ {
			seat := protocol.Seat{Row: row, Col: col}
			label := seat.String()
			cell := fmt.Sprintf(" %-*s", width-1, label)

			switch {
			case b.IsSelected(seat) && b.IsReserved(seat):
				sb.WriteString(bothStyle.Sprint(cell))
			case b.IsSelected(seat):
				sb.WriteString(selectedStyle.Sprint(cell))
			case b.IsReserved(seat):
				sb.WriteString(reservedStyle.Sprint(cell))
			default:
				sb.WriteString(freeStyle.Sprint(cell))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Legend explains the grid markers, with the current selection listed when
// non-empty.
func (r *Renderer) Legend(b *selection.Board) string {
	parts := []string{
		freeStyle.Sprint("free"),
		reservedStyle.Sprint("reserved"),
		selectedStyle.Sprint("selected"),
	}
	line := dimStyle.Sprint("legend: ") + strings.Join(parts, dimStyle.Sprint(" | "))
	if b.SelectionCount() > 0 {
		line += "\n" + dimStyle.Sprint("selected: ") + protocol.JoinSeats(b.Selected())
	}
	return line
}

// Reservations renders the reservation list as a table. A reservation with
// no recorded client shows as Anonymous.
func (r *Renderer) Reservations(list []protocol.Reservation) (string, error) {
	if len(list) == 0 {
		return dimStyle.Sprint("No reservations found."), nil
	}
	data := pterm.TableData{{"Seat", "Ticket", "Client"}}
	for _, res := range list {
		client := res.Client
		if client == "" {
			client = "Anonymous"
		}
		ticket := res.TicketID
		if ticket == "" {
			ticket = "N/A"
		}
		data = append(data, []string{res.Seat.String(), ticket, client})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
